// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes registers the auth routes. Credential endpoints sit behind
// the strict auth limiter; successful attempts are refunded.
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", gates.Limit("auth"),
			middleware.Validate(
				middleware.Rule{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 120},
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
				middleware.Rule{Field: "password", In: middleware.InBody, Type: middleware.TypeString, Required: true, MinLen: 8, MaxLen: 72},
			), ac.Register)
		auth.POST("/login", gates.Limit("auth"),
			middleware.Validate(
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
				middleware.Rule{Field: "password", In: middleware.InBody, Type: middleware.TypeString, Required: true},
			), ac.Login)
		auth.POST("/refresh", gates.Limit("auth"),
			middleware.Validate(
				middleware.Rule{Field: "refreshToken", In: middleware.InBody, Type: middleware.TypeString, Required: true},
			), ac.Refresh)
		auth.GET("/me", gates.Authenticate, ac.Me)
		auth.PUT("/me", gates.Authenticate,
			middleware.Validate(
				middleware.Rule{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MinLen: 2, MaxLen: 120},
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Format: "email"},
			), ac.UpdateMe)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}

	payload, err := ac.authService.Register(c, req)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to register user")
		return
	}

	util.RespondCreated(c, "Registered", payload)
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", err)
		return
	}

	payload, err := ac.authService.Login(c, req)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to log in")
		return
	}

	util.RespondOK(c, "Logged in", payload)
}

// Refresh endpoint
func (ac *AuthController) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid refresh data", err)
		return
	}

	payload, err := ac.authService.Refresh(c, req.RefreshToken)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to refresh session")
		return
	}

	util.RespondOK(c, "Session refreshed", payload)
}

// Me endpoint
func (ac *AuthController) Me(c *gin.Context) {
	identity, ok := util.GetIdentityFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Invalid token", pulse_errors.ErrUnauthorized)
		return
	}

	user, err := ac.authService.Me(c, identity.ID)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load profile")
		return
	}

	util.RespondOK(c, "Profile", user)
}

// UpdateMe endpoint
func (ac *AuthController) UpdateMe(c *gin.Context) {
	identity, ok := util.GetIdentityFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Invalid token", pulse_errors.ErrUnauthorized)
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}

	user, err := ac.authService.UpdateProfile(c, identity.ID, req)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update profile")
		return
	}

	util.RespondOK(c, "Profile updated", user)
}
