package quickchart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ard/internal/clients"
	"ard/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newTestClient(baseURL string) *Client {
	return NewClient(&structures.Config{Chart: structures.ChartConfig{BaseURL: baseURL}}, http.DefaultClient)
}

func TestClient_Render(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chart", r.URL.Path)

		var req RenderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1000, req.Width)
		assert.Equal(t, 300, req.Height)
		assert.Equal(t, "png", req.Format)
		assert.Equal(t, "{type:'bar'}", req.Chart)

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	artifact, err := newTestClient(srv.URL).Render(context.Background(), &RenderRequest{
		Width: 1000, Height: 300, Format: "png", Chart: "{type:'bar'}",
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", artifact.ContentType)
	assert.Equal(t, pngHeader, artifact.Data)
}

func TestClient_Render_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid chart", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Render(context.Background(), &RenderRequest{})
	var apiErr *clients.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "invalid chart")
}

func TestClient_Render_UnexpectedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Render(context.Background(), &RenderRequest{})
	assert.ErrorContains(t, err, "unexpected content type")
}

func TestClient_Render_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Render(context.Background(), &RenderRequest{})
	assert.ErrorContains(t, err, "empty image")
}

func TestClient_Render_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Render(context.Background(), &RenderRequest{})
	assert.Error(t, err)
}
