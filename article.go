package newsclip

// Placeholders used when an optional field cannot be extracted.
const (
	NoAuthor = "기자 정보 없음"
	NoPress  = "언론사 정보 없음"
	NoDate   = "발행일시 정보 없음"
)

// Article is the canonical record produced by a successful extraction.
type Article struct {
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Press       string `json:"press" yaml:"press"`
	PublishedAt string `json:"published_at" yaml:"published_at"`
	Body        string `json:"body" yaml:"body"`
	OriginalURL string `json:"original_url" yaml:"original_url"`
}

// Validate returns an error if the article is missing a mandatory field.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EEXTRACTION, "article title required")
	}
	if a.Body == "" {
		return Errorf(EEXTRACTION, "article body required")
	}
	return nil
}
