// api/util/storage_service.go
package util

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/pulsecollective/pulse/api/logging"
)

// ObjectStorage uploads media files and returns a public URL. Upload failures
// are NOT best-effort: a failed upload fails the upload endpoint.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

// NoopObjectStorage rejects uploads when no bucket is configured. The upload
// endpoint surfaces this as an upstream failure rather than silently losing
// files.
type NoopObjectStorage struct{}

func (NoopObjectStorage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	return "", fmt.Errorf("object storage not configured")
}

func (NoopObjectStorage) Delete(ctx context.Context, key string) error {
	logger.Debug("Object storage disabled, skipping delete")
	return nil
}

// S3ObjectStorage is a minimal client for an S3-compatible endpoint using
// HMAC-SHA256 request signing.
type S3ObjectStorage struct {
	endpoint      string
	bucket        string
	accessKey     string
	secretKey     string
	useSSL        bool
	publicBaseURL string
	client        *http.Client
}

type S3Config struct {
	Endpoint      string
	Bucket        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PublicBaseURL string
}

func NewS3ObjectStorage(cfg S3Config) *S3ObjectStorage {
	return &S3ObjectStorage{
		endpoint:      strings.TrimSuffix(cfg.Endpoint, "/"),
		bucket:        cfg.Bucket,
		accessKey:     cfg.AccessKey,
		secretKey:     cfg.SecretKey,
		useSSL:        cfg.UseSSL,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *S3ObjectStorage) objectURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, url.PathEscape(key))
}

func (s *S3ObjectStorage) sign(method, path, date, contentType string) string {
	mac := hmac.New(sha256.New, []byte(s.secretKey))
	fmt.Fprintf(mac, "%s\n%s\n%s\n%s", method, path, date, contentType)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *S3ObjectStorage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	target := s.objectURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	date := time.Now().UTC().Format(http.TimeFormat)
	path := "/" + s.bucket + "/" + key
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Date", date)
	req.Header.Set("Authorization", fmt.Sprintf("HMAC-SHA256 %s:%s",
		s.accessKey, s.sign(http.MethodPut, path, date, contentType)))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("object storage returned status %d", resp.StatusCode)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return target, nil
}

func (s *S3ObjectStorage) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(key), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	date := time.Now().UTC().Format(http.TimeFormat)
	path := "/" + s.bucket + "/" + key
	req.Header.Set("Date", date)
	req.Header.Set("Authorization", fmt.Sprintf("HMAC-SHA256 %s:%s",
		s.accessKey, s.sign(http.MethodDelete, path, date, "")))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("object storage returned status %d", resp.StatusCode)
	}
	return nil
}
