package mdtabs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL      string
	Client   *http.Client
	Writer   io.Writer
	Options  []Option
	Renderer *Renderer
}

// HTTPRender fetches Markdown over HTTP(S) and writes its HTML.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render http: Writer is nil")
	}
	src, err := Fetch(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("render http: %w", err)
	}
	return Render(RenderRequest{
		Reader:   bytes.NewReader(src),
		Writer:   req.Writer,
		Options:  req.Options,
		Renderer: req.Renderer,
	})
}

// Fetch returns the body of an HTTP(S) GET of rawURL. A nil client uses
// http.DefaultClient. Non-2xx responses are errors.
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", req.URL.Scheme)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.5")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %s", rawURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return body, nil
}
