// api/util/mailing_list_service.go
package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	logger "github.com/pulsecollective/pulse/api/logging"
)

// MailingList syncs newsletter subscribers to an external list provider.
// Like the mailer, every call is best-effort.
type MailingList interface {
	AddSubscriber(ctx context.Context, email, name string) error
	RemoveSubscriber(ctx context.Context, email string) error
}

// NoopMailingList is wired when no provider is configured.
type NoopMailingList struct{}

func (NoopMailingList) AddSubscriber(ctx context.Context, email, name string) error {
	logger.Debug("Mailing list sync disabled, skipping add")
	return nil
}

func (NoopMailingList) RemoveSubscriber(ctx context.Context, email string) error {
	logger.Debug("Mailing list sync disabled, skipping remove")
	return nil
}

// HTTPMailingList talks to a Mailchimp-style list-members JSON API.
type HTTPMailingList struct {
	baseURL string
	apiKey  string
	listID  string
	client  *http.Client
}

func NewHTTPMailingList(baseURL, apiKey, listID string) *HTTPMailingList {
	return &HTTPMailingList{
		baseURL: baseURL,
		apiKey:  apiKey,
		listID:  listID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *HTTPMailingList) AddSubscriber(ctx context.Context, email, name string) error {
	payload, err := json.Marshal(map[string]any{
		"email_address": email,
		"status":        "subscribed",
		"merge_fields":  map[string]string{"NAME": name},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal subscriber payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/lists/%s/members", m.baseURL, m.listID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mailing list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return m.do(req)
}

func (m *HTTPMailingList) RemoveSubscriber(ctx context.Context, email string) error {
	endpoint := fmt.Sprintf("%s/lists/%s/members/%s", m.baseURL, m.listID, url.PathEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build mailing list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	return m.do(req)
}

func (m *HTTPMailingList) do(req *http.Request) error {
	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailing list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("mailing list API returned status %d", resp.StatusCode)
	}
	return nil
}
