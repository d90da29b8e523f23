// Package http provides an HTTP-based implementation of camelot.Downloader
// for fetching remote PDF documents before extraction.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/kiyo-matsu/camelot"
	"golang.org/x/time/rate"
)

// DefaultDownloadTimeout is the default timeout for HTTP requests.
const DefaultDownloadTimeout = 30 * time.Second

// DefaultRPS is the default per-host request rate.
const DefaultRPS = 2.0

// Ensure Downloader implements camelot.Downloader at compile time.
var _ camelot.Downloader = (*Downloader)(nil)

// Downloader retrieves PDF documents over HTTP and stages them as temporary
// files. Requests are rate limited per host so that batch runs against a
// single origin stay polite.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
	rps     float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultDownloadTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithRPS sets the per-host requests per second limit.
// Defaults to DefaultRPS if not specified.
func WithRPS(rps float64) Option {
	return func(dl *Downloader) {
		dl.rps = rps
	}
}

// NewDownloader creates a new HTTP-based Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		timeout:  DefaultDownloadTimeout,
		rps:      DefaultRPS,
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download fetches the document at rawURL into a temporary file and returns
// its path. The caller owns the file and is responsible for removing it.
func (dl *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", camelot.Errorf(camelot.EINVALID, "invalid url %q: %v", rawURL, err)
	}

	if err := dl.wait(ctx, u.Host); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	f, err := os.CreateTemp("", "camelot-download-*.pdf")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}

// wait blocks until the rate limit allows a request to the host.
func (dl *Downloader) wait(ctx context.Context, host string) error {
	dl.mu.Lock()
	limiter, ok := dl.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(dl.rps), 1)
		dl.limiters[host] = limiter
	}
	dl.mu.Unlock()

	return limiter.Wait(ctx)
}
