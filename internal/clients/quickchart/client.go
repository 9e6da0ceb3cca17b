package quickchart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"ard/internal/clients"
	"ard/internal/models"
	"ard/internal/structures"
)

const maxImageSize = 10 << 20

// RenderRequest is the body of POST /chart. Chart is a Chart.js config; it is
// sent as a string so it may contain JavaScript such as pattern fills.
type RenderRequest struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Format          string `json:"format"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	Chart           string `json:"chart"`
}

type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(conf *structures.Config, httpClient *http.Client) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(conf.Chart.BaseURL, "/"),
	}
}

func (c *Client) Render(ctx context.Context, in *RenderRequest) (*models.ChartArtifact, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("quickchart: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chart", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quickchart: request failed: %w", err)
	}
	defer resp.Body.Close()

	if !clients.IsSuccess(resp.StatusCode) {
		return nil, clients.NewAPIError("quickchart", resp)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("quickchart: unexpected content type %q", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("quickchart: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("quickchart: empty image")
	}

	return &models.ChartArtifact{Data: data, ContentType: mediaType}, nil
}
