package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// HTTPSource fetches fragments from a static file server.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource creates a source resolving references against baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// URL resolves ref. Absolute URLs are used as they are.
func (s *HTTPSource) URL(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	return s.base + "/" + strings.TrimLeft(ref, "/")
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, ref string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(ref), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", ref, err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Ref: ref, Code: resp.StatusCode}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", ref, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", ref, err)
	}
	return string(data), nil
}
