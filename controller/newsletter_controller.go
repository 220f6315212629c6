// api/controller/newsletter_controller.go
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

type NewsletterController struct {
	newsletterService service.INewsletterService
}

func NewNewsletterController(newsletterService service.INewsletterService) *NewsletterController {
	return &NewsletterController{
		newsletterService: newsletterService,
	}
}

// RegisterRoutes registers the newsletter routes. Public subscribe and
// unsubscribe sit behind the tight newsletter limiter.
func (nc *NewsletterController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	newsletter := r.Group("/newsletter")
	{
		newsletter.POST("/subscribe", gates.Limit("newsletter"),
			middleware.Validate(
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
				middleware.Rule{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 120},
			), nc.Subscribe)
		newsletter.POST("/unsubscribe", gates.Limit("newsletter"),
			middleware.Validate(
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
			), nc.Unsubscribe)
		newsletter.GET("/subscribers", gates.Authenticate, gates.Admin, nc.ListSubscribers)
	}
}

// Subscribe endpoint
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid subscription data", err)
		return
	}

	subscriber, err := nc.newsletterService.Subscribe(c, req)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to subscribe")
		return
	}

	util.RespondCreated(c, "Subscribed", subscriber)
}

// Unsubscribe endpoint
func (nc *NewsletterController) Unsubscribe(c *gin.Context) {
	var req model.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid unsubscribe data", err)
		return
	}

	if err := nc.newsletterService.Unsubscribe(c, req.Email); err != nil {
		util.RespondServiceError(c, err, "Failed to unsubscribe")
		return
	}

	util.RespondOK(c, "Unsubscribed", nil)
}

// ListSubscribers endpoint
func (nc *NewsletterController) ListSubscribers(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)

	subscribers, total, err := nc.newsletterService.ListSubscribers(c, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list subscribers")
		return
	}

	util.RespondPaginated(c, "Subscribers", subscribers, util.NewMeta(total, page, limit))
}
