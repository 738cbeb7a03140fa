// Package fetch retrieves manifest bodies over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxBodySize caps how much of a response is read. Real manifests are a
// few kilobytes; a megabyte leaves room for embedded catalogs.
const maxBodySize = 4 << 20

// HTTPFetcher implements domain.ManifestFetcher.
type HTTPFetcher struct {
	client *http.Client
	log    *zap.Logger
}

// New creates an HTTPFetcher with the given per-request timeout.
func New(timeout time.Duration, log *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Fetch issues a GET and returns the body. Any non-2xx status is an
// error; the caller normalizes it into a fetch_error issue.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	f.log.Debug("fetched manifest",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return body, nil
}
