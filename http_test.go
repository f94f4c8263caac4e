package mdtabs

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(demoDoc))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	if !strings.Contains(out.String(), "code-block demo-js code-active") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestHTTPRenderStatusError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL, Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPRenderRejectsScheme(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com/doc.md", Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}

func TestFetchSendsAcceptHeader(t *testing.T) {
	t.Parallel()
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		_, _ = w.Write([]byte("# doc\n"))
	}))
	defer srv.Close()
	body, err := Fetch(context.Background(), nil, srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != "# doc\n" {
		t.Fatalf("unexpected body %q", body)
	}
	if !strings.HasPrefix(accept, "text/markdown") {
		t.Fatalf("expected markdown Accept header, got %q", accept)
	}
}

func TestFetchRequiresURL(t *testing.T) {
	t.Parallel()
	if _, err := Fetch(context.Background(), nil, ""); err == nil {
		t.Fatalf("expected error for empty URL")
	}
}
