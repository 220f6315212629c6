// api/controller/upload_controller.go
package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/config"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

type UploadController struct {
	uploadService service.IUploadService
}

func NewUploadController(uploadService service.IUploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// RegisterRoutes registers the upload routes. Uploads are staff only and sit
// behind their own limiter.
func (uc *UploadController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	uploads := r.Group("/uploads", gates.Authenticate, gates.Limit("uploads"))
	{
		uploads.POST("", gates.Staff, uc.Upload)
		uploads.DELETE("/*key", gates.Admin, uc.Delete)
	}
}

// Upload endpoint
func (uc *UploadController) Upload(c *gin.Context) {
	maxSize := config.GetInt64("uploads.maxSizeBytes")

	header, err := c.FormFile("file")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Missing file", err)
		return
	}
	if header.Size > maxSize {
		util.RespondError(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Unreadable file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Unreadable file", err)
		return
	}
	if int64(len(data)) > maxSize {
		util.RespondError(c, http.StatusBadRequest, "File too large")
		return
	}

	upload, err := uc.uploadService.Upload(c, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to upload file")
		return
	}

	util.RespondCreated(c, "File uploaded", upload)
}

// Delete endpoint
func (uc *UploadController) Delete(c *gin.Context) {
	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	if err := uc.uploadService.Delete(c, key); err != nil {
		util.RespondServiceError(c, err, "Failed to delete file")
		return
	}

	util.RespondOK(c, "File deleted", nil)
}
