// api/middleware/logger_test.go
package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/middleware"
)

func observedRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	prev := logging.Log
	logging.Log = zap.New(core)
	t.Cleanup(func() { logging.Log = prev })

	r := gin.New()
	r.Use(middleware.Logger())
	return r, logs
}

func TestLogger_RequestHandled(t *testing.T) {
	r, logs := observedRouter(t)
	r.GET("/mixes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mixes?page=1", nil)
	r.ServeHTTP(w, req)

	entries := logs.FilterMessage("Request handled").All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/mixes", fields["path"])
	assert.Equal(t, "page=1", fields["query"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestLogger_AttachedErrorsLoggedAtErrorLevel(t *testing.T) {
	r, logs := observedRouter(t)
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("database unavailable"))
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/broken", nil)
	r.ServeHTTP(w, req)

	entries := logs.FilterMessage("Request failed").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "database unavailable", entries[0].ContextMap()["error"])
	assert.Empty(t, logs.FilterMessage("Request handled").All())
}
