// api/controller/submission_controller.go
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

type SubmissionController struct {
	submissionService service.ISubmissionService
}

func NewSubmissionController(submissionService service.ISubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// RegisterRoutes registers the submission routes. The public intake endpoint
// is rate limited per client; moderation endpoints are admin only.
func (sc *SubmissionController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	submissions := r.Group("/submissions")
	{
		submissions.POST("", gates.Limit("submissions"),
			middleware.Validate(
				middleware.Rule{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 120},
				middleware.Rule{Field: "email", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "email"},
				middleware.Rule{Field: "type", In: middleware.InBody, Type: middleware.TypeString, Required: true, Enum: []string{"mix", "article", "event"}},
				middleware.Rule{Field: "title", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 200},
				middleware.Rule{Field: "message", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 5000},
				middleware.Rule{Field: "link", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
			), sc.CreateSubmission)
		submissions.GET("", gates.Authenticate, gates.Admin, sc.ListSubmissions)
		submissions.PUT("/:id/status", gates.Authenticate, gates.Admin,
			middleware.Validate(
				middleware.Rule{Field: "status", In: middleware.InBody, Type: middleware.TypeString, Required: true, Enum: []string{model.SubmissionApproved, model.SubmissionRejected, model.SubmissionPending}},
			), sc.UpdateStatus)
	}
}

// CreateSubmission endpoint
func (sc *SubmissionController) CreateSubmission(c *gin.Context) {
	var input model.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid submission data", err)
		return
	}

	submission, err := sc.submissionService.CreateSubmission(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create submission")
		return
	}

	util.RespondCreated(c, "Submission received", submission)
}

// ListSubmissions endpoint
func (sc *SubmissionController) ListSubmissions(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)

	submissions, total, err := sc.submissionService.ListSubmissions(c, c.Query("status"), limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list submissions")
		return
	}

	util.RespondPaginated(c, "Submissions", submissions, util.NewMeta(total, page, limit))
}

// UpdateStatus endpoint
func (sc *SubmissionController) UpdateStatus(c *gin.Context) {
	var req model.SubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid status data", err)
		return
	}

	submission, err := sc.submissionService.UpdateSubmissionStatus(c, c.Param("id"), req.Status)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update submission")
		return
	}

	util.RespondOK(c, "Submission updated", submission)
}
