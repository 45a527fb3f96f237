package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/crhub/newsclip"
	"github.com/crhub/newsclip/goquery"
	nchttp "github.com/crhub/newsclip/http"
	"github.com/crhub/newsclip/readability"
	"github.com/crhub/newsclip/scrape"
	ncslog "github.com/crhub/newsclip/slog"
	"github.com/crhub/newsclip/trafilatura"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	scraper := deps.Scraper
	if scraper == nil {
		scraper = c.newScraper(deps.Logger)
	}

	articles := make([]*newsclip.Article, len(c.URLs))
	errs := make([]error, len(c.URLs))

	limit := c.Concurrency
	if limit < 1 {
		limit = 1
	}

	// Goroutines never fail; each URL's error is kept in errs.
	var g errgroup.Group
	g.SetLimit(limit)
	for i, u := range c.URLs {
		g.Go(func() error {
			articles[i], errs[i] = scraper.Scrape(deps.Ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	var ok []*newsclip.Article
	var failed int
	for i, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.URLs[i], newsclip.ErrorMessage(err))
			continue
		}
		ok = append(ok, articles[i])
	}

	if len(ok) > 0 {
		if err := c.write(deps.Stdout, ok); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(c.URLs))
	}
	return nil
}

func (c *ExtractCmd) newScraper(logger *slog.Logger) newsclip.Scraper {
	opts := []nchttp.Option{
		nchttp.WithTimeout(c.Timeout),
		nchttp.WithUserAgent(c.UserAgent),
	}

	sources := goquery.DefaultSources()
	if c.StrictHost {
		sources = newsclip.NewSourceMap(sources.Sources(), newsclip.WithHostMatching())
	}

	s := &scrape.Scraper{
		Resolver: ncslog.NewLoggingResolver(nchttp.NewResolver(opts...), logger),
		Fetcher:  ncslog.NewLoggingFetcher(nchttp.NewFetcher(opts...), logger),
		Sources:  ncslog.NewLoggingSourceMatcher(sources, logger),
	}
	switch c.Generic {
	case "trafilatura":
		s.Fallback = trafilatura.NewExtractor()
	case "readability":
		s.Fallback = readability.NewExtractor()
	}

	return ncslog.NewLoggingScraper(s, logger)
}

// write renders articles in the selected format. JSON and YAML emit a single
// object when only one URL was requested.
func (c *ExtractCmd) write(w io.Writer, articles []*newsclip.Article) error {
	var v any = articles
	if len(c.URLs) == 1 {
		v = articles[0]
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, newsclip.FormatArticles(articles))
		return err
	}
}
