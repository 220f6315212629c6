// api/middleware/cache_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

func cachedRouter(store *memStore, handlerCalls *int) *gin.Engine {
	r := gin.New()
	r.GET("/articles", middleware.CachePage(store, time.Minute), func(c *gin.Context) {
		*handlerCalls++
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Articles"})
	})
	r.POST("/articles", middleware.InvalidateCache(store, "/articles*"), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Article created"})
	})
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCachePage_MissThenHit(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := cachedRouter(store, &calls)

	first := get(r, "/articles")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, calls)

	second := get(r, "/articles")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, calls, "second request must be served from cache")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCachePage_QueryStringIsPartOfKey(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := cachedRouter(store, &calls)

	get(r, "/articles?page=1")
	get(r, "/articles?page=2")
	assert.Equal(t, 2, calls)

	// Same query, same order: cached.
	get(r, "/articles?page=1")
	assert.Equal(t, 2, calls)

	// Different parameter order is a different key.
	get(r, "/articles?page=1&limit=10")
	get(r, "/articles?limit=10&page=1")
	assert.Equal(t, 4, calls)
}

func TestCachePage_StoreFailureFallsThrough(t *testing.T) {
	store := newMemStore()
	store.failing = true
	calls := 0
	r := cachedRouter(store, &calls)

	assert.Equal(t, http.StatusOK, get(r, "/articles").Code)
	assert.Equal(t, http.StatusOK, get(r, "/articles").Code)
	assert.Equal(t, 2, calls, "a broken cache must not break reads")
}

func TestCachePage_ErrorsNotCached(t *testing.T) {
	store := newMemStore()
	r := gin.New()
	r.GET("/missing", middleware.CachePage(store, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	get(r, "/missing")
	assert.Empty(t, store.values)
}

func TestCachePage_AuthenticatedRequestsBypassCache(t *testing.T) {
	store := newMemStore()
	calls := 0
	setIdentity := func(c *gin.Context) {
		c.Set(util.IdentityContextKey, model.Identity{ID: "e1", Role: model.RoleEditor})
	}
	r := gin.New()
	r.GET("/articles", setIdentity, middleware.CachePage(store, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Articles"})
	})

	get(r, "/articles")
	get(r, "/articles")
	assert.Equal(t, 2, calls, "identified requests run the handler every time")
	assert.Empty(t, store.values, "identified responses never enter the shared cache")
}

func TestInvalidateCache_PurgesAfterWrite(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := cachedRouter(store, &calls)

	get(r, "/articles")
	assert.Equal(t, 1, calls)
	assert.Len(t, store.values, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/articles", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, store.values)

	get(r, "/articles")
	assert.Equal(t, 2, calls, "cache was purged, handler must run again")
}

func TestInvalidateCache_SkipsFailedWrites(t *testing.T) {
	store := newMemStore()
	calls := 0
	r := cachedRouter(store, &calls)
	r.POST("/articles/fail", middleware.InvalidateCache(store, "/articles*"), func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed"})
	})

	get(r, "/articles")
	assert.Len(t, store.values, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/articles/fail", nil)
	r.ServeHTTP(w, req)
	assert.Len(t, store.values, 1, "failed writes keep the cache intact")
}
