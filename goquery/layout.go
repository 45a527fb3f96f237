package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/crhub/newsclip"
)

// Layout declares where a publisher keeps each article field.
type Layout struct {
	Title  Chain
	Author Chain

	// Press is the fixed press name. When empty, the press name is read
	// from the first non-empty PressAttrs attribute of the PressChain match.
	Press      string
	PressChain Chain
	PressAttrs []string

	// DateAttrs are machine-readable attributes preferred over the
	// visible text of the Date match.
	Date       Chain
	DateAttrs  []string
	DateLayout newsclip.DateLayout

	Body  Chain
	Noise *Noise
}

// Parse parses HTML into a document tree.
func Parse(html string) (*goquery.Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Extract locates the article fields in doc. The body container is
// modified in place by noise removal.
func (l *Layout) Extract(doc *goquery.Document) (*newsclip.ExtractResult, error) {
	root := doc.Selection

	title, ok := l.Title.First(root)
	if !ok {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "title not found")
	}
	body, ok := l.Body.First(root)
	if !ok {
		return nil, newsclip.Errorf(newsclip.EEXTRACTION, "body not found")
	}

	r := &newsclip.ExtractResult{
		Title:      title.Text(),
		Press:      l.Press,
		DateLayout: l.DateLayout,
	}

	if author, ok := l.Author.First(root); ok {
		r.Author = author.Text()
	}

	if r.Press == "" {
		if logo, ok := l.PressChain.First(root); ok {
			r.Press = firstAttr(logo, l.PressAttrs)
		}
	}

	if date, ok := l.Date.First(root); ok {
		r.PublishedText = date.Text()
		r.Published = firstAttr(date, l.DateAttrs)
		if r.Published == "" {
			r.Published = r.PublishedText
		}
	}

	if l.Noise != nil {
		l.Noise.Remove(body)
	}
	r.Body = body.Text()

	return r, nil
}

// extract parses html and applies the layout.
func (l *Layout) extract(html string) (*newsclip.ExtractResult, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return l.Extract(doc)
}

// firstAttr returns the first non-blank attribute value among attrs.
func firstAttr(sel *goquery.Selection, attrs []string) string {
	for _, name := range attrs {
		if v, ok := sel.Attr(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
