package goquery_test

import (
	"strings"
	"testing"

	"github.com/crhub/newsclip"
	"github.com/crhub/newsclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const naverHTML = `<!DOCTYPE html>
<html lang="ko">
<head><title>네이버 뉴스</title></head>
<body>
<div class="media_end_head_top">
	<a href="https://www.yna.co.kr"><img class="media_end_head_top_logo_img light_type" src="logo.png" title="연합뉴스" alt="연합뉴스 로고"></a>
	<a href="https://www.yna.co.kr"><img class="media_end_head_top_logo_img dark_type" src="logo-dark.png" title="다크 로고"></a>
</div>
<h2 id="title_area" class="media_end_head_headline"><span>정부, 내년 예산안
	발표</span></h2>
<div class="media_end_head_journalist"><em class="media_end_head_journalist_name">홍길동 기자</em></div>
<div class="media_end_head_info_datestamp">
	<span class="media_end_head_info_datestamp_time _ARTICLE_DATE_TIME" data-date-time="2025-11-14T10:30:00+09:00">2025.11.14. 오전 10:30</span>
</div>
<article id="dic_area" class="go_trans _article_content">
	<a class="media_end_head_autosummary_button">요약봇</a>
	첫 번째 문단입니다.<br><br>두 번째 문단입니다.
	<div class="ad_area">광고 문구</div>
	<span class="related_news">관련 기사 링크</span>
	<script>var tracker = "스크립트";</script>
	<style>.x { display: none }</style>
</article>
</body>
</html>`

func TestNaverExtractor_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "naver", goquery.NewNaverExtractor().Name())
}

func TestNaverExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewNaverExtractor().Extract(naverHTML)
		require.NoError(t, err)

		a, err := r.Article("https://n.news.naver.com/mnews/article/001/0014612345")
		require.NoError(t, err)

		assert.Equal(t, "정부, 내년 예산안 발표", a.Title)
		assert.Equal(t, "연합뉴스", a.Press)
		assert.Equal(t, "홍길동 기자", a.Author)
		assert.Equal(t, "2025-11-14 10:30", a.PublishedAt)
		assert.Equal(t, "첫 번째 문단입니다. 두 번째 문단입니다.", a.Body)
	})

	t.Run("falls back to visible date text without attribute", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(naverHTML, ` data-date-time="2025-11-14T10:30:00+09:00"`, "", 1)

		r, err := goquery.NewNaverExtractor().Extract(html)
		require.NoError(t, err)
		a, err := r.Article("https://n.news.naver.com/mnews/article/001/1")
		require.NoError(t, err)

		assert.Equal(t, "2025.11.14. 오전 10:30", a.PublishedAt)
	})

	t.Run("falls back to visible date text for unparseable attribute", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(naverHTML, "2025-11-14T10:30:00+09:00", "unknown", 1)

		r, err := goquery.NewNaverExtractor().Extract(html)
		require.NoError(t, err)
		a, err := r.Article("https://n.news.naver.com/mnews/article/001/1")
		require.NoError(t, err)

		assert.Equal(t, "2025.11.14. 오전 10:30", a.PublishedAt)
	})

	t.Run("uses placeholders when byline and logo are missing", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(naverHTML, `<em class="media_end_head_journalist_name">홍길동 기자</em>`, "", 1)
		html = strings.Replace(html, "light_type", "unknown_type", 1)

		r, err := goquery.NewNaverExtractor().Extract(html)
		require.NoError(t, err)
		a, err := r.Article("https://n.news.naver.com/mnews/article/001/1")
		require.NoError(t, err)

		assert.Equal(t, newsclip.NoAuthor, a.Author)
		assert.Equal(t, newsclip.NoPress, a.Press)
	})

	t.Run("returns EEXTRACTION when title is missing", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(naverHTML, `id="title_area"`, `id="other"`, 1)

		_, err := goquery.NewNaverExtractor().Extract(html)

		require.Error(t, err)
		assert.Equal(t, newsclip.EEXTRACTION, newsclip.ErrorCode(err))
		assert.Equal(t, "title not found", newsclip.ErrorMessage(err))
	})

	t.Run("returns EEXTRACTION when body is missing", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(naverHTML, `id="dic_area"`, `id="other_area"`, 1)

		_, err := goquery.NewNaverExtractor().Extract(html)

		require.Error(t, err)
		assert.Equal(t, newsclip.EEXTRACTION, newsclip.ErrorCode(err))
		assert.Equal(t, "body not found", newsclip.ErrorMessage(err))
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewNaverExtractor().Extract("  ")

		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewNaverExtractor()
		first, err := e.Extract(naverHTML)
		require.NoError(t, err)
		second, err := e.Extract(naverHTML)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
