package clients

import (
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 4 << 10

// APIError is a non-2xx answer of one of the REST collaborators.
type APIError struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: HTTP %d %s: %s", e.Service, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Service, e.StatusCode, e.Message)
}

// NewAPIError reads at most 4KB of the body as the message.
func NewAPIError(service string, resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Message:    string(body),
	}
}

func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
