package newsclip

import "strings"

// FormatArticle formats an article as labelled plain text for display.
func FormatArticle(a *Article) string {
	var b strings.Builder
	b.WriteString("제목: " + a.Title + "\n")
	b.WriteString("언론사: " + a.Press + "\n")
	b.WriteString("기자: " + a.Author + "\n")
	b.WriteString("발행: " + a.PublishedAt + "\n")
	b.WriteString("URL: " + a.OriginalURL + "\n")
	b.WriteString("\n" + a.Body + "\n")
	return b.String()
}

// FormatArticles formats articles for display, separated by a rule.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		parts = append(parts, FormatArticle(a))
	}
	return strings.Join(parts, "\n---\n\n")
}
