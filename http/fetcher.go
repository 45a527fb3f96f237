// Package http provides net/http implementations of newsclip.Fetcher and
// newsclip.Resolver for static article pages.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/crhub/newsclip"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a desktop browser user agent. Several news sites
// reject requests from non-browser agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements newsclip.Fetcher at compile time.
var _ newsclip.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML using HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher or Resolver.
type Option func(*options)

type options struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

func newOptions(opts []Option) *options {
	o := &options{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	return o
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. The client's own timeout
// applies instead of WithTimeout.
func WithClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := newOptions(opts)
	return &Fetcher{
		client:    o.client,
		userAgent: o.userAgent,
	}
}

// Fetch retrieves the page at url and returns its body decoded as UTF-8.
// The encoding is taken from the Content-Type header or sniffed from the
// document's meta tags.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", newsclip.WrapError(newsclip.ENETWORK, err, "invalid request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", transportError(err, url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", newsclip.Errorf(newsclip.ENOTFOUND, "article not found: %s", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", newsclip.Errorf(newsclip.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", newsclip.WrapError(newsclip.ENETWORK, err, "failed to decode response from %s", url)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", transportError(err, url)
	}

	return string(body), nil
}

// transportError classifies a failed round trip as ETIMEOUT or ENETWORK.
func transportError(err error, url string) error {
	if isTimeout(err) {
		return newsclip.WrapError(newsclip.ETIMEOUT, err, "request timed out: %s", url)
	}
	return newsclip.WrapError(newsclip.ENETWORK, err, "request failed: %s", url)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
