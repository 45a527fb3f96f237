package mock

import (
	"context"

	"github.com/crhub/newsclip"
)

var _ newsclip.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of newsclip.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*newsclip.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*newsclip.Article, error) {
	return s.ScrapeFn(ctx, url)
}
