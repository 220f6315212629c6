// api/middleware/auth_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func testTokens() *util.TokenService {
	return util.NewTokenService("test-secret", 15*time.Minute, time.Hour)
}

func authRouter(tokens *util.TokenService, roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.Authenticate(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := util.GetIdentityFromContext(c)
		c.JSON(http.StatusOK, identity)
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthenticate_NoToken(t *testing.T) {
	r := authRouter(testTokens())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	r := authRouter(testTokens())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := util.NewTokenService("test-secret", -time.Minute, time.Hour)
	access, _, err := expired.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	r := authRouter(testTokens())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	other := util.NewTokenService("another-secret", 15*time.Minute, time.Hour)
	access, _, err := other.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	r := authRouter(testTokens())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthenticate_RefreshTokenRejectedAsAccess(t *testing.T) {
	tokens := testTokens()
	_, refresh, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	r := authRouter(tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := testTokens()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "dj@pulse.net", Role: model.RoleEditor})
	assert.NoError(t, err)

	r := authRouter(tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dj@pulse.net")
	assert.Contains(t, w.Body.String(), model.RoleEditor)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	tokens := testTokens()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	r := authRouter(tokens, model.RoleEditor, model.RoleAdmin)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestRequireRoles_Allowed(t *testing.T) {
	tokens := testTokens()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleAdmin})
	assert.NoError(t, err)

	r := authRouter(tokens, model.RoleEditor, model.RoleAdmin)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateOptional(t *testing.T) {
	tokens := testTokens()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "a@b.c", Role: model.RoleUser})
	assert.NoError(t, err)

	r := gin.New()
	r.GET("/cart", middleware.AuthenticateOptional(tokens), func(c *gin.Context) {
		if identity, ok := util.GetIdentityFromContext(c); ok {
			c.String(http.StatusOK, identity.ID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}
