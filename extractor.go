package newsclip

// ExtractResult holds raw field values located by an Extractor, before
// normalization.
type ExtractResult struct {
	Title  string
	Author string
	Press  string

	// Published is the machine-readable date attribute when one exists,
	// otherwise the visible date text.
	Published string

	// PublishedText is the visible date text. It is used when Published
	// cannot be parsed according to DateLayout.
	PublishedText string

	DateLayout DateLayout

	// Body is the plain text of the body container after noise removal.
	Body string
}

// Article normalizes the raw fields into an Article fetched from originalURL.
// Title and body are mandatory; author, press and date fall back to
// placeholders.
func (r *ExtractResult) Article(originalURL string) (*Article, error) {
	a := &Article{
		Title:       CleanText(r.Title),
		Author:      CleanText(r.Author),
		Press:       CleanText(r.Press),
		PublishedAt: NormalizeDate(r.DateLayout, r.Published, r.PublishedText),
		Body:        CleanText(r.Body),
		OriginalURL: originalURL,
	}
	if a.Author == "" {
		a.Author = NoAuthor
	}
	if a.Press == "" {
		a.Press = NoPress
	}
	if a.PublishedAt == "" {
		a.PublishedAt = NoDate
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Extractor maps the HTML of one publisher's article page to raw fields.
type Extractor interface {
	// Name returns the extractor's identifier (e.g., "naver", "yonhap").
	Name() string

	// Extract parses the HTML and locates the article fields.
	// Returns EEXTRACTION if the title or body cannot be found.
	// Returns ENOTIMPLEMENTED if the source is declared but not wired yet.
	Extract(html string) (*ExtractResult, error)
}
