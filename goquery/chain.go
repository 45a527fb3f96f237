// Package goquery implements newsclip.Extractor for each supported
// publisher using CSS selector fallback chains.
package goquery

import (
	"iter"

	"github.com/PuerkitoBio/goquery"
)

// Lookup finds a candidate element below root. It returns an empty
// selection when nothing matches.
type Lookup func(root *goquery.Selection) *goquery.Selection

// CSS returns a Lookup for the first element matching selector.
func CSS(selector string) Lookup {
	return func(root *goquery.Selection) *goquery.Selection {
		return root.Find(selector).First()
	}
}

// AttrEquals returns a Lookup for the first tag element whose attr equals value.
func AttrEquals(tag, attr, value string) Lookup {
	return func(root *goquery.Selection) *goquery.Selection {
		return root.Find(tag).FilterFunction(func(_ int, sel *goquery.Selection) bool {
			v, ok := sel.Attr(attr)
			return ok && v == value
		}).First()
	}
}

// Chain is an ordered list of lookups. Earlier lookups take priority.
type Chain []Lookup

// Selectors builds a Chain of CSS lookups in the given order.
func Selectors(selectors ...string) Chain {
	c := make(Chain, 0, len(selectors))
	for _, s := range selectors {
		c = append(c, CSS(s))
	}
	return c
}

// Attempts yields the result of each lookup in priority order. A lookup
// runs only when the consumer asks for it.
func (c Chain) Attempts(root *goquery.Selection) iter.Seq2[int, *goquery.Selection] {
	return func(yield func(int, *goquery.Selection) bool) {
		for i, lookup := range c {
			if !yield(i, lookup(root)) {
				return
			}
		}
	}
}

// First returns the element found by the first successful lookup.
func (c Chain) First(root *goquery.Selection) (*goquery.Selection, bool) {
	for _, sel := range c.Attempts(root) {
		if sel.Length() > 0 {
			return sel, true
		}
	}
	return nil, false
}
