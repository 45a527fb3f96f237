package trafilatura_test

import (
	"testing"

	"github.com/crhub/newsclip"
	"github.com/crhub/newsclip/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsclip.Extractor at compile time.
var _ newsclip.Extractor = (*trafilatura.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
<title>지역 도서관 야간 개관 확대 - 동네일보</title>
<meta property="og:title" content="지역 도서관 야간 개관 확대">
<meta property="og:site_name" content="동네일보">
<meta name="author" content="한지민">
<meta property="article:published_time" content="2025-11-14T10:30:00+09:00">
</head>
<body>
<nav><a href="/">홈</a><a href="/local">지역</a></nav>
<article>
<h1>지역 도서관 야간 개관 확대</h1>
<p>시는 다음 달부터 지역 도서관 다섯 곳의 운영 시간을 밤 열 시까지 연장한다고 밝혔다. 직장인과 학생의 이용 편의를 높이기 위한 조치다.</p>
<p>시 관계자는 야간 이용객이 꾸준히 늘고 있어 시범 운영 결과를 바탕으로 대상 도서관을 더 늘릴 계획이라고 말했다.</p>
<p>도서관별 세부 운영 시간은 시 홈페이지에서 확인할 수 있으며, 휴관일은 기존과 같이 매주 월요일이다.</p>
</article>
<footer>Copyright 2025 동네일보</footer>
</body>
</html>`

func TestExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "trafilatura", trafilatura.NewExtractor().Name())
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articleHTML)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "지역 도서관 야간 개관 확대")
		assert.Contains(t, result.Body, "밤 열 시까지 연장")
		assert.NotContains(t, result.Body, "Copyright")
		assert.Equal(t, newsclip.DateRaw, result.DateLayout)
	})

	t.Run("produces a valid article", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articleHTML)
		require.NoError(t, err)

		a, err := result.Article("https://news.example.kr/local/1")

		require.NoError(t, err)
		assert.NotEmpty(t, a.Press)
		assert.NotEmpty(t, a.PublishedAt)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})
}
