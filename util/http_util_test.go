// api/util/http_util_test.go
package util_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		total          int64
		page, limit    int
		wantTotalPages int
	}{
		{0, 1, 10, 0},
		{1, 1, 10, 1},
		{10, 1, 10, 1},
		{11, 2, 10, 2},
		{95, 1, 10, 10},
		{100, 1, 100, 1},
	}
	for _, tt := range tests {
		meta := util.NewMeta(tt.total, tt.page, tt.limit)
		assert.Equal(t, tt.wantTotalPages, meta.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, meta.Total)
		assert.Equal(t, tt.page, meta.Page)
		assert.Equal(t, tt.limit, meta.Limit)
	}
}

func TestRespondOK_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	util.RespondOK(c, "Articles", []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Articles", resp["message"])
	assert.NotNil(t, resp["data"])
	_, hasMeta := resp["meta"]
	assert.False(t, hasMeta)
}

func TestRespondError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	util.RespondError(c, http.StatusForbidden, "Forbidden")

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Forbidden", resp["message"])
	_, hasData := resp["data"]
	assert.False(t, hasData)
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{pulse_errors.ErrArticleNotFound, http.StatusNotFound},
		{pulse_errors.ErrEmailTaken, http.StatusBadRequest},
		{pulse_errors.ErrSlugTaken, http.StatusBadRequest},
		{pulse_errors.ErrInsufficientStock, http.StatusBadRequest},
		{pulse_errors.ErrInvalidCredentials, http.StatusUnauthorized},
		{pulse_errors.ErrForbidden, http.StatusForbidden},
		{pulse_errors.ErrUpstreamFailure, http.StatusBadGateway},
		{pulse_errors.ErrDatabaseOperation, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		util.RespondServiceError(c, tt.err, "fallback")
		assert.Equal(t, tt.want, w.Code, "error %v", tt.err)
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := util.NewTokenService("secret", 15*time.Minute, time.Hour)
	user := &model.User{ID: "u1", Email: "dj@pulse.net", Role: model.RoleEditor}

	access, refresh, err := tokens.IssuePair(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	identity, err := tokens.VerifyAccess(access)
	assert.NoError(t, err)
	assert.Equal(t, model.Identity{ID: "u1", Email: "dj@pulse.net", Role: model.RoleEditor}, identity)

	identity, err = tokens.VerifyRefresh(refresh)
	assert.NoError(t, err)
	assert.Equal(t, "u1", identity.ID)
}

func TestTokenService_TypeConfusionRejected(t *testing.T) {
	tokens := util.NewTokenService("secret", 15*time.Minute, time.Hour)
	access, refresh, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	_, err = tokens.VerifyAccess(refresh)
	assert.ErrorIs(t, err, pulse_errors.ErrInvalidToken)

	_, err = tokens.VerifyRefresh(access)
	assert.ErrorIs(t, err, pulse_errors.ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := util.NewTokenService("secret", -time.Minute, time.Hour)
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	_, err = tokens.VerifyAccess(access)
	assert.ErrorIs(t, err, pulse_errors.ErrTokenExpired)
}
