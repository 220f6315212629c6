// api/controller/settings_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

type SettingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// RegisterRoutes registers the site settings routes
func (sc *SettingsController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	settings := r.Group("/settings")
	{
		settings.GET("", gates.Cache(0), sc.GetSettings)
		settings.PUT("", gates.Authenticate, gates.Admin,
			middleware.Validate(
				middleware.Rule{Field: "values", In: middleware.InBody, Type: middleware.TypeObject, Required: true},
			),
			gates.Invalidate("/api/v1/settings*", "/api/v1/homepage*"),
			sc.UpdateSettings)
	}
}

// GetSettings endpoint
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.settingsService.GetSettings(c)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load settings")
		return
	}

	util.RespondOK(c, "Settings", settings)
}

// UpdateSettings endpoint
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid settings data", err)
		return
	}

	settings, err := sc.settingsService.UpdateSettings(c, req.Values)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update settings")
		return
	}

	util.RespondOK(c, "Settings updated", settings)
}
