// Package mailer sends the fixed acknowledgment email for HIGH leads
// through an HTTP email-relay API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inlethq/leadgate/internal/httpx"
	"github.com/inlethq/leadgate/internal/logger"
)

// minPlausibleLength is the shortest address PlausibleAddress accepts.
const minPlausibleLength = 6

// Config holds the relay endpoint and the fixed acknowledgment content.
type Config struct {
	URL     string
	APIKey  string
	From    string
	Subject string
	Body    string
	Timeout time.Duration
}

// Client talks to the email relay.
type Client struct {
	cfg    Config
	client *http.Client
	logger logger.Logger
}

// NewClient creates a relay client.
func NewClient(cfg Config, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: httpx.NewClient(cfg.Timeout),
		logger: log,
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendAcknowledgment sends the fixed acknowledgment to one address.
func (c *Client) SendAcknowledgment(ctx context.Context, to string) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.cfg.From,
		To:      strings.TrimSpace(to),
		Subject: c.cfg.Subject,
		Text:    c.cfg.Body,
	})
	if err != nil {
		return fmt.Errorf("marshal acknowledgment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send acknowledgment: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("email relay returned %d: %s", res.StatusCode, bytes.TrimSpace(body))
	}

	c.logger.Info("acknowledgment sent")
	return nil
}

// PlausibleAddress reports whether a value looks enough like an email
// address to attempt delivery: after trimming it contains both "@" and
// "." and is at least six characters. Deliberately not RFC validation;
// the relay is the authority on deliverability.
func PlausibleAddress(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= minPlausibleLength &&
		strings.Contains(s, "@") &&
		strings.Contains(s, ".")
}
