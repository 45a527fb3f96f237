package http

import (
	"context"
	"net/http"

	"github.com/crhub/newsclip"
)

// Ensure Resolver implements newsclip.Resolver at compile time.
var _ newsclip.Resolver = (*Resolver)(nil)

// Resolver finds the landing URL of shortened or redirecting links by
// following redirects of a HEAD request. It makes a single attempt.
type Resolver struct {
	client    *http.Client
	userAgent string
}

// NewResolver creates a new Resolver. It accepts the same options as NewFetcher.
func NewResolver(opts ...Option) *Resolver {
	o := newOptions(opts)
	return &Resolver{
		client:    o.client,
		userAgent: o.userAgent,
	}
}

// Resolve returns the final URL reached after following redirects. The
// status code of the final response is not checked; the fetch that follows
// reports it.
func (r *Resolver) Resolve(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", newsclip.WrapError(newsclip.ENETWORK, err, "invalid URL: %s", url)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", newsclip.WrapError(newsclip.ENETWORK, err, "redirect resolution failed: %s", url)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
