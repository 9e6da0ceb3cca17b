package providers

import (
	"net"
	"net/http"
	"time"

	"ard/internal/structures"
)

// NewHttpClientProvider builds the client shared by every REST collaborator.
// It does not retry; a failed call fails the run.
func NewHttpClientProvider(conf *structures.Config) *http.Client {
	return &http.Client{
		Timeout: conf.Http.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}
