// api/controller/homepage_controller.go
package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/config"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

type HomepageController struct {
	homepageService service.IHomepageService
}

func NewHomepageController(homepageService service.IHomepageService) *HomepageController {
	return &HomepageController{
		homepageService: homepageService,
	}
}

// RegisterRoutes registers the homepage route. The aggregate is expensive,
// so it gets its own short cache TTL.
func (hc *HomepageController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	r.GET("/homepage", gates.Cache(config.GetDuration("cache.homepageTTL")), hc.GetHomepage)
}

// GetHomepage endpoint
func (hc *HomepageController) GetHomepage(c *gin.Context) {
	homepage, err := hc.homepageService.GetHomepage(c)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load homepage")
		return
	}

	util.RespondOK(c, "Homepage", homepage)
}
