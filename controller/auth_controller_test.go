// api/controller/auth_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/pulsecollective/pulse/api/controller"
	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/test/mock"
	"github.com/pulsecollective/pulse/api/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func noopGate() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func testGates(tokens *util.TokenService) *controller.Gates {
	return &controller.Gates{
		Authenticate: middleware.Authenticate(tokens),
		OptionalAuth: middleware.AuthenticateOptional(tokens),
		Staff:        middleware.RequireRoles(model.RoleEditor, model.RoleAdmin),
		Admin:        middleware.RequireRoles(model.RoleAdmin),
		Cache:        func(ttl time.Duration) gin.HandlerFunc { return noopGate() },
		Invalidate:   func(patterns ...string) gin.HandlerFunc { return noopGate() },
		Limit:        func(group string) gin.HandlerFunc { return noopGate() },
	}
}

func tokensForTest() *util.TokenService {
	return util.NewTokenService("test-secret", 15*time.Minute, time.Hour)
}

func setupAuthRouter(svc *mock.MockAuthService, tokens *util.TokenService) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")
	controller.NewAuthController(svc).RegisterRoutes(api, testGates(tokens))
	return r
}

func TestRegister_Success(t *testing.T) {
	svc := new(mock.MockAuthService)
	svc.On("Register", tmock.Anything, tmock.Anything).
		Return(&model.AuthPayload{
			User:         &model.User{ID: "u1", Email: "dj@pulse.net", Role: model.RoleUser},
			AccessToken:  "access",
			RefreshToken: "refresh",
		}, nil)

	r := setupAuthRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/register",
		strings.NewReader(`{"name":"DJ Pulse","email":"dj@pulse.net","password":"s3cret-pass"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp util.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	svc.AssertExpectations(t)
}

func TestRegister_NormalizesEmailBeforeService(t *testing.T) {
	svc := new(mock.MockAuthService)
	svc.On("Register", tmock.Anything, tmock.MatchedBy(func(req model.RegisterRequest) bool {
		return req.Email == "dj@pulse.net"
	})).Return(&model.AuthPayload{User: &model.User{ID: "u1"}}, nil)

	r := setupAuthRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/register",
		strings.NewReader(`{"name":"DJ Pulse","email":"  DJ@Pulse.NET ","password":"s3cret-pass"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := new(mock.MockAuthService)

	r := setupAuthRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/register",
		strings.NewReader(`{"name":"D","email":"nope","password":"short"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	svc.AssertNotCalled(t, "Register")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(mock.MockAuthService)
	svc.On("Login", tmock.Anything, tmock.Anything).
		Return(nil, pulse_errors.ErrInvalidCredentials)

	r := setupAuthRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/auth/login",
		strings.NewReader(`{"email":"dj@pulse.net","password":"wrong-pass"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_RequiresToken(t *testing.T) {
	svc := new(mock.MockAuthService)

	r := setupAuthRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
	svc.AssertNotCalled(t, "Me")
}

func TestMe_Success(t *testing.T) {
	tokens := tokensForTest()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "dj@pulse.net", Role: model.RoleUser})
	assert.NoError(t, err)

	svc := new(mock.MockAuthService)
	svc.On("Me", tmock.Anything, "u1").
		Return(&model.User{ID: "u1", Email: "dj@pulse.net", Role: model.RoleUser}, nil)

	r := setupAuthRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dj@pulse.net")
	svc.AssertExpectations(t)
}
