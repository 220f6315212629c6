// api/util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
)

// PaginationMeta is the envelope metadata attached to paginated listings.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Response is the uniform envelope every endpoint returns. Its shape is an
// external contract shared with the web frontend.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    any             `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

// NewMeta computes listing metadata from a total row count and the clamped
// pagination parameters.
func NewMeta(total int64, page, limit int) *PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginationMeta{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondPaginated(c *gin.Context, message string, data any, meta *PaginationMeta) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data, Meta: meta})
}

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, Response{Success: false, Message: message})
}

// RespondError writes an error envelope without logging; callers log at the
// level they deem appropriate.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Message: message})
}

// RespondWithFieldErrors carries per-field violations in the envelope data,
// as the validation gate contract requires.
func RespondWithFieldErrors(c *gin.Context, code int, message string, fieldErrors any) {
	c.JSON(code, Response{Success: false, Message: message, Data: fieldErrors})
}

// RespondServiceError maps domain sentinels to their HTTP status. Controllers
// still switch explicitly where an endpoint needs a bespoke message.
func RespondServiceError(c *gin.Context, err error, fallback string) {
	var apiErr *pulse_errors.APIError
	if errors.As(err, &apiErr) {
		RespondWithError(c, apiErr.Status, apiErr.Message, err)
		return
	}

	switch {
	case errors.Is(err, pulse_errors.ErrUserNotFound),
		errors.Is(err, pulse_errors.ErrArticleNotFound),
		errors.Is(err, pulse_errors.ErrPlaylistNotFound),
		errors.Is(err, pulse_errors.ErrMixNotFound),
		errors.Is(err, pulse_errors.ErrEventNotFound),
		errors.Is(err, pulse_errors.ErrProductNotFound),
		errors.Is(err, pulse_errors.ErrSubmissionNotFound),
		errors.Is(err, pulse_errors.ErrCartItemNotFound),
		errors.Is(err, pulse_errors.ErrSubscriberMissing):
		RespondWithError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, pulse_errors.ErrEmailTaken),
		errors.Is(err, pulse_errors.ErrSlugTaken),
		errors.Is(err, pulse_errors.ErrAlreadySubscribed),
		errors.Is(err, pulse_errors.ErrInsufficientStock),
		errors.Is(err, pulse_errors.ErrMissingSession):
		RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, pulse_errors.ErrInvalidCredentials),
		errors.Is(err, pulse_errors.ErrInvalidToken),
		errors.Is(err, pulse_errors.ErrTokenExpired),
		errors.Is(err, pulse_errors.ErrUnauthorized):
		RespondWithError(c, http.StatusUnauthorized, err.Error(), err)
	case errors.Is(err, pulse_errors.ErrForbidden):
		RespondWithError(c, http.StatusForbidden, "Forbidden", err)
	case errors.Is(err, pulse_errors.ErrUpstreamFailure):
		RespondWithError(c, http.StatusBadGateway, "Upstream service failed", err)
	default:
		RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

// GetIdentityFromContext returns the identity the authentication gate
// attached to the request.
func GetIdentityFromContext(c *gin.Context) (model.Identity, bool) {
	val, exists := c.Get(IdentityContextKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := val.(model.Identity)
	return identity, ok
}
