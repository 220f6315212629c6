// api/service/upload_service.go
package service

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"audio/mpeg": ".mp3",
}

type IUploadService interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (*model.Upload, error)
	Delete(ctx context.Context, key string) error
}

type UploadService struct {
	storage util.ObjectStorage
}

func NewUploadService(storage util.ObjectStorage) *UploadService {
	return &UploadService{storage: storage}
}

// Upload validates the content type and stores the file under a generated
// key. Unlike the mail integrations this is not best-effort: a storage
// failure fails the request.
func (s *UploadService) Upload(ctx context.Context, filename, contentType string, data []byte) (*model.Upload, error) {
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		return nil, pulse_errors.NewAPIError(http.StatusBadRequest,
			fmt.Sprintf("unsupported content type %q", contentType), nil)
	}

	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	key := fmt.Sprintf("media/%s-%s%s", uuid.NewString(), sanitizeName(base), ext)

	url, err := s.storage.Upload(ctx, key, contentType, data)
	if err != nil {
		logger.Error("Object storage upload failed", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("%w: %s", pulse_errors.ErrUpstreamFailure, err)
	}

	logger.Info("File uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return &model.Upload{Key: key, URL: url}, nil
}

func (s *UploadService) Delete(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Error("Object storage delete failed", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("%w: %s", pulse_errors.ErrUpstreamFailure, err)
	}
	return nil
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
