package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Noise removes clutter from a body container in two passes: first the
// script and style elements plus the drop selectors, then every descendant
// whose class list contains a token starting with one of the keywords.
type Noise struct {
	drop    string
	pattern *regexp.Regexp
}

// NewNoise creates a Noise filter. Keywords match case-insensitively
// anywhere in a class token, so "banner" matches "topbanner" and "related"
// matches "newsRelated". Keywords shorter than four characters only match at
// the start of a token, after a hyphen or underscore, or as a capitalized
// word after a lowercase letter: "ad" matches "ad-banner", "article_ad" and
// "googleAd" but not "header".
func NewNoise(drop []string, keywords ...string) *Noise {
	n := &Noise{
		drop: strings.Join(append([]string{"script", "style"}, drop...), ", "),
	}

	var anywhere, short, camel []string
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if len(k) >= minAnywhereKeyword {
			anywhere = append(anywhere, regexp.QuoteMeta(k))
			continue
		}
		short = append(short, regexp.QuoteMeta(k))
		camel = append(camel, regexp.QuoteMeta(strings.ToUpper(k[:1])+k[1:]))
	}

	var alts []string
	if len(anywhere) > 0 {
		alts = append(alts, `(?i:`+strings.Join(anywhere, "|")+`)`)
	}
	if len(short) > 0 {
		alts = append(alts,
			`(?i:(?:^|[-_])(?:`+strings.Join(short, "|")+`))`,
			`[a-z](?:`+strings.Join(camel, "|")+`)`,
		)
	}
	if len(alts) > 0 {
		n.pattern = regexp.MustCompile(strings.Join(alts, "|"))
	}
	return n
}

// minAnywhereKeyword is the length from which a keyword may match in the
// middle of a class token.
const minAnywhereKeyword = 4

// MatchClass reports whether any token of a class attribute is noise.
func (n *Noise) MatchClass(class string) bool {
	if n.pattern == nil {
		return false
	}
	for _, token := range strings.Fields(class) {
		if n.pattern.MatchString(token) {
			return true
		}
	}
	return false
}

// Remove deletes noise below body and turns line breaks into newlines.
// The body element itself is never removed.
func (n *Noise) Remove(body *goquery.Selection) {
	body.Find(n.drop).Remove()

	body.Find("[class]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		return n.MatchClass(class)
	}).Remove()

	body.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})
}
