package mock

import (
	"context"

	"github.com/crhub/newsclip"
)

var _ newsclip.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsclip.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ newsclip.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of newsclip.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, url string) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, url string) (string, error) {
	return r.ResolveFn(ctx, url)
}
