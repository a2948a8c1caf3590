// Package notify formats lead notifications and delivers them to a
// fixed webhook channel. Delivery is the primary purpose of the whole
// pipeline, so its failure is the one surfaced to the submitter.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inlethq/leadgate/internal/domain"
	"github.com/inlethq/leadgate/internal/httpx"
	"github.com/inlethq/leadgate/internal/logger"
)

// ErrNotConfigured is returned when no webhook URL is set.
var ErrNotConfigured = errors.New("notification webhook not configured")

type webhookPayload struct {
	Text string `json:"text"`
}

// WebhookNotifier posts formatted notifications as JSON to one URL,
// retrying transient failures.
type WebhookNotifier struct {
	url    string
	client *http.Client
	retry  httpx.RetryConfig
	logger logger.Logger
}

// NewWebhookNotifier creates a notifier for the given webhook URL.
func NewWebhookNotifier(url string, timeout time.Duration, maxAttempts int, log logger.Logger) *WebhookNotifier {
	retry := httpx.DefaultRetryConfig()
	if maxAttempts > 0 {
		retry.MaxAttempts = maxAttempts
	}

	return &WebhookNotifier{
		url:    url,
		client: httpx.NewClient(timeout),
		retry:  retry,
		logger: log,
	}
}

// Notify formats and delivers one notification.
func (n *WebhookNotifier) Notify(ctx context.Context, notification domain.Notification) error {
	if n.url == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(webhookPayload{Text: Format(notification)})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = httpx.Retry(ctx, n.retry, func(ctx context.Context) error {
		return n.post(ctx, payload)
	})
	if err != nil {
		n.logger.Error("notification delivery failed",
			logger.String("lead_id", notification.Lead.ID),
			logger.Error(err))
		return fmt.Errorf("deliver notification: %w", err)
	}

	n.logger.Info("notification delivered",
		logger.String("lead_id", notification.Lead.ID),
		logger.String("label", string(notification.Lead.Label)))
	return nil
}

func (n *WebhookNotifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", res.StatusCode, bytes.TrimSpace(body))
	}

	return nil
}
