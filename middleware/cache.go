// api/middleware/cache.go

package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/util"
)

const cacheKeyPrefix = "cache:"

// cacheKey derives the deterministic key from the request path plus the
// query string exactly as sent (order preserving).
func cacheKey(c *gin.Context) string {
	return cacheKeyPrefix + c.Request.URL.RequestURI()
}

// bodyWriter tees the response body so a miss can be stored after the
// handler has run.
type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves GET responses from the cache store when present and
// otherwise stores the computed JSON response under the request's key. Cache
// failures are logged and swallowed: a stale or missing cache must never
// fail a user-facing request.
//
// Two concurrent misses for the same key may both compute and both store;
// that race is accepted (last write wins, both bodies are equivalent reads).
func CachePage(store CacheStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		// Authenticated staff may see drafts; those responses must never be
		// served from or stored into the shared public cache.
		if _, authed := c.Get(util.IdentityContextKey); authed {
			c.Next()
			return
		}

		key := cacheKey(c)
		cached, hit, err := store.Get(c, key)
		if err != nil {
			logger.Error("Cache lookup failed", zap.Error(err), zap.String("key", key))
		} else if hit {
			logger.Debug("Cache hit", zap.String("key", key))
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		writer := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK || writer.body.Len() == 0 {
			return
		}
		if err := store.Set(c, key, writer.body.String(), ttl); err != nil {
			logger.Error("Cache store failed", zap.Error(err), zap.String("key", key))
		}
	}
}

// InvalidateCache purges the declared glob patterns after a successful (2xx)
// write. Store failures are logged and swallowed.
func InvalidateCache(store CacheStore, patterns ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		for _, pattern := range patterns {
			if err := store.DeleteByPattern(c, cacheKeyPrefix+pattern); err != nil {
				logger.Error("Cache invalidation failed",
					zap.Error(err),
					zap.String("pattern", pattern))
			}
		}
	}
}
