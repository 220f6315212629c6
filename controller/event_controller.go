// api/controller/event_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type EventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func eventBodyRules() []middleware.Rule {
	return []middleware.Rule{
		{Field: "title", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 200},
		{Field: "venue", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MaxLen: 200},
		{Field: "city", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 120},
		{Field: "startsAt", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "datetime"},
		{Field: "endsAt", In: middleware.InBody, Type: middleware.TypeString, Format: "datetime"},
		{Field: "description", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 2000},
		{Field: "coverImage", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "ticketUrl", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "published", In: middleware.InBody, Type: middleware.TypeBool},
	}
}

// RegisterRoutes registers the event routes
func (ec *EventController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	invalidate := gates.Invalidate("/api/v1/events*", "/api/v1/homepage*")

	events := r.Group("/events")
	{
		events.GET("", gates.OptionalAuth, gates.Cache(0), ec.ListEvents)
		events.GET("/:id", gates.OptionalAuth, gates.Cache(0), ec.GetEvent)
		events.POST("", gates.Authenticate, gates.Staff,
			middleware.Validate(eventBodyRules()...), invalidate, ec.CreateEvent)
		events.PUT("/:id", gates.Authenticate, gates.Staff,
			middleware.Validate(eventBodyRules()...), invalidate, ec.UpdateEvent)
		events.DELETE("/:id", gates.Authenticate, gates.Staff, invalidate, ec.DeleteEvent)
	}
}

// CreateEvent endpoint
func (ec *EventController) CreateEvent(c *gin.Context) {
	var input model.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid event data", err)
		return
	}

	event, err := ec.eventService.CreateEvent(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create event")
		return
	}

	util.RespondCreated(c, "Event created", event)
}

// UpdateEvent endpoint
func (ec *EventController) UpdateEvent(c *gin.Context) {
	var input model.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid event data", err)
		return
	}

	event, err := ec.eventService.UpdateEvent(c, c.Param("id"), input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update event")
		return
	}

	util.RespondOK(c, "Event updated", event)
}

// DeleteEvent endpoint
func (ec *EventController) DeleteEvent(c *gin.Context) {
	if err := ec.eventService.DeleteEvent(c, c.Param("id")); err != nil {
		util.RespondServiceError(c, err, "Failed to delete event")
		return
	}

	util.RespondOK(c, "Event deleted", nil)
}

// GetEvent endpoint
func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.eventService.GetEvent(c, c.Param("id"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load event")
		return
	}
	if !event.Published && !staffRequest(c) {
		util.RespondServiceError(c, pulse_errors.ErrEventNotFound, "Failed to load event")
		return
	}

	util.RespondOK(c, "Event", event)
}

// ListEvents endpoint
func (ec *EventController) ListEvents(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)
	filter := model.EventFilter{
		UpcomingOnly:  c.Query("upcoming") == "true",
		PublishedOnly: !(staffRequest(c) && c.Query("published") == "false"),
	}

	events, total, err := ec.eventService.ListEvents(c, filter, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list events")
		return
	}

	util.RespondPaginated(c, "Events", events, util.NewMeta(total, page, limit))
}
