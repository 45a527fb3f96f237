// Package scrape runs the article extraction pipeline: resolve the link,
// select the publisher, fetch and extract the page, normalize the fields.
package scrape

import (
	"context"

	"github.com/crhub/newsclip"
)

// Ensure Scraper implements newsclip.Scraper at compile time.
var _ newsclip.Scraper = (*Scraper)(nil)

// Scraper sequences the extraction pipeline. Each call is independent;
// a Scraper holds no per-run state and is safe for concurrent use.
type Scraper struct {
	Resolver newsclip.Resolver
	Fetcher  newsclip.Fetcher
	Sources  newsclip.SourceMatcher

	// Fallback, when set, extracts pages from unsupported sources instead
	// of failing with EUNSUPPORTED.
	Fallback newsclip.Extractor
}

// Scrape resolves rawURL, extracts the article from the matching publisher
// and returns it. Failures are reported with these codes:
//
//   - EURLACCESS when the link cannot be resolved; the error's URL field
//     holds rawURL
//   - EUNSUPPORTED when no publisher matches, or its extractor is not implemented
//   - ENOTFOUND, ETIMEOUT or ENETWORK when the page cannot be fetched. Fetch
//     failures keep these codes and are not reported as EEXTRACTION.
//   - EEXTRACTION when the title or body cannot be extracted
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*newsclip.Article, error) {
	finalURL, err := s.Resolver.Resolve(ctx, rawURL)
	if err != nil {
		e := newsclip.WrapError(newsclip.EURLACCESS, err, "URL access failed: %s", rawURL)
		e.URL = rawURL
		return nil, e
	}

	extractor, err := s.extractorFor(finalURL)
	if err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, finalURL)
	if err != nil {
		return nil, fetchError(err, finalURL)
	}

	result, err := extractor.Extract(html)
	if err != nil {
		return nil, s.extractError(err, finalURL)
	}

	article, err := result.Article(finalURL)
	if err != nil {
		return nil, newsclip.WrapError(newsclip.EEXTRACTION, err, "extraction failed: %s", finalURL)
	}
	return article, nil
}

// extractorFor selects the extractor for url, falling back to s.Fallback
// for unsupported sources when one is configured.
func (s *Scraper) extractorFor(url string) (newsclip.Extractor, error) {
	src, err := s.Sources.Match(url)
	if err == nil {
		return src.Extractor, nil
	}
	if newsclip.ErrorCode(err) == newsclip.EUNSUPPORTED && s.Fallback != nil {
		return s.Fallback, nil
	}
	return nil, err
}

// fetchError keeps the specific not-found and timeout codes and reports
// everything else as a network failure.
func fetchError(err error, url string) error {
	switch newsclip.ErrorCode(err) {
	case newsclip.ENOTFOUND, newsclip.ETIMEOUT, newsclip.ENETWORK:
		return err
	}
	return newsclip.WrapError(newsclip.ENETWORK, err, "fetch failed: %s", url)
}

func (s *Scraper) extractError(err error, url string) error {
	if newsclip.ErrorCode(err) == newsclip.ENOTIMPLEMENTED {
		return &newsclip.Error{
			Code:    newsclip.EUNSUPPORTED,
			Message: "unsupported source: " + url,
			Domains: s.Sources.Domains(),
			Err:     err,
		}
	}
	return newsclip.WrapError(newsclip.EEXTRACTION, err, "extraction failed: %s", url)
}
