package api

import (
	"github.com/inlethq/leadgate/internal/domain"
)

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	OK    bool         `json:"ok"`
	ID    string       `json:"id"`
	Label domain.Label `json:"label"`
}

// IgnoredResponse acknowledges a submission that was silently dropped.
// It is indistinguishable from success to the sender.
type IgnoredResponse struct {
	OK      bool `json:"ok"`
	Ignored bool `json:"ignored"`
}

// ErrorResponse carries a rejection or failure message.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// ClassifyRequest is a dry-run classification request.
type ClassifyRequest struct {
	Message string `json:"message" binding:"required"`
}

// ClassifyResponse wraps a dry-run classification result.
type ClassifyResponse struct {
	Result domain.ClassificationResult `json:"result"`
}

// RulesResponse lists the active rule tables.
type RulesResponse struct {
	Rules domain.RuleSet `json:"rules"`
}
