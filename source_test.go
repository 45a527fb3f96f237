package newsclip_test

import (
	"testing"

	"github.com/crhub/newsclip"
	"github.com/crhub/newsclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedExtractor(name string) *mock.Extractor {
	return &mock.Extractor{NameFn: func() string { return name }}
}

func testSources() []newsclip.Source {
	return []newsclip.Source{
		{Domain: "naver.com", Extractor: namedExtractor("naver")},
		{Domain: "daum.net", Extractor: namedExtractor("daum")},
		{Domain: "yna.co.kr", Extractor: namedExtractor("yonhap")},
	}
}

func TestSourceMap_Match(t *testing.T) {
	t.Parallel()

	t.Run("selects source by containment", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources())

		src, err := m.Match("https://v.daum.net/v/20251114103000123")

		require.NoError(t, err)
		assert.Equal(t, "daum.net", src.Domain)
		assert.Equal(t, "daum", src.Extractor.Name())
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources())

		// Loose matching sees naver.com before yna.co.kr.
		src, err := m.Match("https://www.yna.co.kr/view/1?ref=naver.com")

		require.NoError(t, err)
		assert.Equal(t, "naver", src.Extractor.Name())
	})

	t.Run("returns EUNSUPPORTED listing all domains", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources())

		_, err := m.Match("https://www.bbc.co.uk/news/1")

		require.Error(t, err)
		assert.Equal(t, newsclip.EUNSUPPORTED, newsclip.ErrorCode(err))
		assert.Equal(t, []string{"naver.com", "daum.net", "yna.co.kr"}, newsclip.ErrorDomains(err))
		assert.Contains(t, newsclip.ErrorMessage(err), "naver.com, daum.net, yna.co.kr")
	})

	t.Run("host matching ignores domains outside the host", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources(), newsclip.WithHostMatching())

		src, err := m.Match("https://www.yna.co.kr/view/1?ref=naver.com")

		require.NoError(t, err)
		assert.Equal(t, "yonhap", src.Extractor.Name())
	})

	t.Run("host matching accepts subdomains and exact hosts", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources(), newsclip.WithHostMatching())

		src, err := m.Match("https://n.news.naver.com/mnews/article/001/1")
		require.NoError(t, err)
		assert.Equal(t, "naver", src.Extractor.Name())

		src, err = m.Match("https://daum.net/v/1")
		require.NoError(t, err)
		assert.Equal(t, "daum", src.Extractor.Name())
	})

	t.Run("host matching rejects lookalike hosts", func(t *testing.T) {
		t.Parallel()

		m := newsclip.NewSourceMap(testSources(), newsclip.WithHostMatching())

		_, err := m.Match("https://notnaver.com/article")

		assert.Equal(t, newsclip.EUNSUPPORTED, newsclip.ErrorCode(err))
	})
}

func TestSourceMap_IsReadOnly(t *testing.T) {
	t.Parallel()

	sources := testSources()
	m := newsclip.NewSourceMap(sources)

	sources[0].Domain = "changed.com"
	got := m.Sources()
	got[1].Domain = "changed.net"

	assert.Equal(t, []string{"naver.com", "daum.net", "yna.co.kr"}, m.Domains())
}
