// api/controller/mix_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type MixController struct {
	mixService service.IMixService
}

func NewMixController(mixService service.IMixService) *MixController {
	return &MixController{
		mixService: mixService,
	}
}

func mixBodyRules() []middleware.Rule {
	return []middleware.Rule{
		{Field: "title", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 200},
		{Field: "dj", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MaxLen: 120},
		{Field: "description", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 1000},
		{Field: "audioUrl", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "url"},
		{Field: "coverImage", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "durationSeconds", In: middleware.InBody, Type: middleware.TypeInt, Min: floatPtr(0)},
	}
}

// RegisterRoutes registers the mix routes. Play counts are a public write,
// so they purge the cached mix pages too.
func (mc *MixController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	invalidate := gates.Invalidate("/api/v1/mixes*", "/api/v1/homepage*")

	mixes := r.Group("/mixes")
	{
		mixes.GET("", gates.Cache(0), mc.ListMixes)
		mixes.GET("/:id", gates.Cache(0), mc.GetMix)
		mixes.POST("/:id/play", invalidate, mc.RecordPlay)
		mixes.POST("", gates.Authenticate, gates.Staff,
			middleware.Validate(mixBodyRules()...), invalidate, mc.CreateMix)
		mixes.PUT("/:id", gates.Authenticate, gates.Staff,
			middleware.Validate(mixBodyRules()...), invalidate, mc.UpdateMix)
		mixes.DELETE("/:id", gates.Authenticate, gates.Staff, invalidate, mc.DeleteMix)
	}
}

// CreateMix endpoint
func (mc *MixController) CreateMix(c *gin.Context) {
	var input model.MixInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid mix data", err)
		return
	}

	mix, err := mc.mixService.CreateMix(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create mix")
		return
	}

	util.RespondCreated(c, "Mix created", mix)
}

// UpdateMix endpoint
func (mc *MixController) UpdateMix(c *gin.Context) {
	var input model.MixInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid mix data", err)
		return
	}

	mix, err := mc.mixService.UpdateMix(c, c.Param("id"), input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update mix")
		return
	}

	util.RespondOK(c, "Mix updated", mix)
}

// DeleteMix endpoint
func (mc *MixController) DeleteMix(c *gin.Context) {
	if err := mc.mixService.DeleteMix(c, c.Param("id")); err != nil {
		util.RespondServiceError(c, err, "Failed to delete mix")
		return
	}

	util.RespondOK(c, "Mix deleted", nil)
}

// GetMix endpoint
func (mc *MixController) GetMix(c *gin.Context) {
	mix, err := mc.mixService.GetMix(c, c.Param("id"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load mix")
		return
	}

	util.RespondOK(c, "Mix", mix)
}

// ListMixes endpoint
func (mc *MixController) ListMixes(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)

	mixes, total, err := mc.mixService.ListMixes(c, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list mixes")
		return
	}

	util.RespondPaginated(c, "Mixes", mixes, util.NewMeta(total, page, limit))
}

// RecordPlay endpoint
func (mc *MixController) RecordPlay(c *gin.Context) {
	plays, err := mc.mixService.RecordPlay(c, c.Param("id"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to record play")
		return
	}

	util.RespondOK(c, "Play recorded", gin.H{"playCount": plays})
}
