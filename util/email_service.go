// api/util/email_service.go
package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	logger "github.com/pulsecollective/pulse/api/logging"
)

// Mailer sends transactional email. Callers treat every send as best-effort:
// failures are logged, never propagated to the primary request.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// NoopMailer is wired when no email API key is configured.
type NoopMailer struct{}

func (NoopMailer) Send(ctx context.Context, to, subject, html string) error {
	logger.Debug("Email sending disabled, dropping message")
	return nil
}

// HTTPMailer talks to a Resend-compatible JSON email API.
type HTTPMailer struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewHTTPMailer(baseURL, apiKey, from string) *HTTPMailer {
	return &HTTPMailer{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *HTTPMailer) Send(ctx context.Context, to, subject, html string) error {
	payload, err := json.Marshal(map[string]any{
		"from":    m.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}
	return nil
}
