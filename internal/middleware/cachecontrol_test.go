package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCacheControl(t *testing.T) {
	r := gin.New()
	r.GET("/list", CacheControl(NoStoreDirective), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/suggestions", CacheControl(SuggestionCacheDirective), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Cache-Control"); got != NoStoreDirective {
		t.Errorf("Cache-Control = %q; want %q", got, NoStoreDirective)
	}

	req = httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Cache-Control"); got != SuggestionCacheDirective {
		t.Errorf("Cache-Control = %q; want %q", got, SuggestionCacheDirective)
	}
}

func TestCacheControl_LaterMiddlewareOverrides(t *testing.T) {
	r := gin.New()
	r.GET("/x", CacheControl(NoStoreDirective), CacheControl(SuggestionCacheDirective), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Cache-Control"); got != SuggestionCacheDirective {
		t.Errorf("Cache-Control = %q; want the route-level directive to win", got)
	}
}
