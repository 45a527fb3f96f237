package newsclip

import "context"

// Scraper runs the full extraction pipeline for one URL.
type Scraper interface {
	// Scrape resolves the URL, selects the publisher's extractor, fetches
	// and extracts the page and returns the normalized Article.
	Scrape(ctx context.Context, url string) (*Article, error)
}
