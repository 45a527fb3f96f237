package goquery

import "github.com/crhub/newsclip"

// defaultSources is built once at init and never modified.
var defaultSources = newsclip.NewSourceMap([]newsclip.Source{
	{Domain: "naver.com", Extractor: NewNaverExtractor()},
	{Domain: "daum.net", Extractor: NewDaumExtractor()},
	{Domain: "yna.co.kr", Extractor: NewYonhapExtractor()},
	{Domain: "chosun.com", Extractor: NewChosunExtractor()},
	{Domain: "joongang.co.kr", Extractor: NewJoongangExtractor()},
	{Domain: "hani.co.kr", Extractor: NewHaniExtractor()},
	{Domain: "hankyung.com", Extractor: NewHankyungExtractor()},
})

// DefaultSources returns the table of supported publishers in match order.
func DefaultSources() *newsclip.SourceMap {
	return defaultSources
}
