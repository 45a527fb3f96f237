package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crhub/newsclip"
	nchttp "github.com/crhub/newsclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("follows redirects to the landing URL", func(t *testing.T) {
		t.Parallel()

		var methods []string
		mux := http.NewServeMux()
		mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)
			http.Redirect(w, r, "/hop", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/article/1", http.StatusFound)
		})
		mux.HandleFunc("/article/1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		got, err := nchttp.NewResolver().Resolve(context.Background(), server.URL+"/short")

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/article/1", got)
		assert.Equal(t, []string{http.MethodHead}, methods)
	})

	t.Run("returns the URL itself without redirects", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		got, err := nchttp.NewResolver().Resolve(context.Background(), server.URL+"/view/1")

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/view/1", got)
	})

	t.Run("does not fail on error status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
		}))
		defer server.Close()

		got, err := nchttp.NewResolver().Resolve(context.Background(), server.URL+"/a")

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/a", got)
	})

	t.Run("returns ENETWORK on timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		_, err := nchttp.NewResolver(nchttp.WithTimeout(10*time.Millisecond)).Resolve(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, newsclip.ENETWORK, newsclip.ErrorCode(err))
	})

	t.Run("returns ENETWORK for malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := nchttp.NewResolver().Resolve(context.Background(), "http://%zz")

		assert.Equal(t, newsclip.ENETWORK, newsclip.ErrorCode(err))
	})
}
