// api/middleware/rate_limiter_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pulsecollective/pulse/api/middleware"
)

func limitedRouter(store *memStore, cfg middleware.RateLimitConfig, status int) *gin.Engine {
	r := gin.New()
	r.POST("/limited", middleware.RateLimiter(store, cfg), func(c *gin.Context) {
		c.String(status, "done")
	})
	return r
}

func hit(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/limited", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	store := newMemStore()
	r := limitedRouter(store, middleware.RateLimitConfig{
		Group:  "general",
		Limit:  2,
		Window: time.Minute,
	}, http.StatusOK)

	assert.Equal(t, http.StatusOK, hit(r).Code)
	assert.Equal(t, http.StatusOK, hit(r).Code)

	w := hit(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiter_Headers(t *testing.T) {
	store := newMemStore()
	r := limitedRouter(store, middleware.RateLimitConfig{
		Group:  "general",
		Limit:  5,
		Window: time.Minute,
	}, http.StatusOK)

	w := hit(r)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_SkipSuccessfulRefunds(t *testing.T) {
	store := newMemStore()
	r := limitedRouter(store, middleware.RateLimitConfig{
		Group:          "auth",
		Limit:          2,
		Window:         time.Minute,
		SkipSuccessful: true,
	}, http.StatusOK)

	// Successful attempts never consume the quota.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(r).Code)
	}
}

func TestRateLimiter_FailuresConsumeQuota(t *testing.T) {
	store := newMemStore()
	r := limitedRouter(store, middleware.RateLimitConfig{
		Group:          "auth",
		Limit:          2,
		Window:         time.Minute,
		SkipSuccessful: true,
	}, http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, hit(r).Code)
	assert.Equal(t, http.StatusUnauthorized, hit(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}

func TestRateLimiter_FailsOpenOnStoreError(t *testing.T) {
	store := newMemStore()
	store.failing = true
	r := limitedRouter(store, middleware.RateLimitConfig{
		Group:  "general",
		Limit:  1,
		Window: time.Minute,
	}, http.StatusOK)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r).Code)
	}
}

func TestRateLimiter_GroupsAreIndependent(t *testing.T) {
	store := newMemStore()
	r := gin.New()
	r.POST("/a", middleware.RateLimiter(store, middleware.RateLimitConfig{Group: "a", Limit: 1, Window: time.Minute}), func(c *gin.Context) {
		c.String(http.StatusOK, "a")
	})
	r.POST("/b", middleware.RateLimiter(store, middleware.RateLimitConfig{Group: "b", Limit: 1, Window: time.Minute}), func(c *gin.Context) {
		c.String(http.StatusOK, "b")
	})

	wA := httptest.NewRecorder()
	reqA, _ := http.NewRequest("POST", "/a", nil)
	r.ServeHTTP(wA, reqA)
	assert.Equal(t, http.StatusOK, wA.Code)

	// Group a is exhausted, group b still has room.
	wA2 := httptest.NewRecorder()
	reqA2, _ := http.NewRequest("POST", "/a", nil)
	r.ServeHTTP(wA2, reqA2)
	assert.Equal(t, http.StatusTooManyRequests, wA2.Code)

	wB := httptest.NewRecorder()
	reqB, _ := http.NewRequest("POST", "/b", nil)
	r.ServeHTTP(wB, reqB)
	assert.Equal(t, http.StatusOK, wB.Code)
}
