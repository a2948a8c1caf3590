// Package api exposes the HTTP surface of the leadgate service: the
// public intake endpoint, a dry-run classify endpoint, rule inspection
// and health checks.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inlethq/leadgate/internal/classifier"
	"github.com/inlethq/leadgate/internal/domain"
	"github.com/inlethq/leadgate/internal/logger"
	"github.com/inlethq/leadgate/internal/pipeline"
	"github.com/inlethq/leadgate/internal/telemetry"
)

// Handler handles HTTP requests for the leadgate API.
type Handler struct {
	engine    *classifier.Engine
	pipeline  *pipeline.Pipeline
	telemetry *telemetry.Provider
	logger    logger.Logger
	service   string
	version   string
}

// NewHandler creates a new API handler.
func NewHandler(
	engine *classifier.Engine,
	pl *pipeline.Pipeline,
	tel *telemetry.Provider,
	log logger.Logger,
	service, version string,
) *Handler {
	return &Handler{
		engine:    engine,
		pipeline:  pl,
		telemetry: tel,
		logger:    log,
		service:   service,
		version:   version,
	}
}

// SubmitLead accepts one contact-form submission, classifies it and
// runs the lead pipeline. Form-encoded and JSON bodies are both
// accepted so the endpoint can back a plain HTML form.
func (h *Handler) SubmitLead(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBind(&sub); err != nil {
		h.telemetry.Metrics.SubmissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed submission"})
		return
	}

	// Bots fill the hidden field; answer as if everything worked.
	if sub.Company != "" {
		h.telemetry.Metrics.HoneypotTripped.Inc()
		h.logger.Info("honeypot tripped, submission dropped")
		c.JSON(http.StatusAccepted, IgnoredResponse{OK: true, Ignored: true})
		return
	}

	if !domain.Present(sub.Message) {
		h.telemetry.Metrics.SubmissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message is required"})
		return
	}
	if !sub.HasContact() {
		h.telemetry.Metrics.SubmissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at least one contact field is required"})
		return
	}

	ctx, span := h.telemetry.Tracer.Start(c.Request.Context(), "lead.classify")
	start := time.Now()
	result := h.engine.Classify(sub.Message)
	h.telemetry.Metrics.ClassifyDuration.Observe(time.Since(start).Seconds())
	span.End()

	lead := domain.Lead{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Label:     result.Label,
		Scores:    result.Scores,
		Reasons:   result.Reasons,
		Email:     domain.Optional(sub.Email),
		Phone:     domain.Optional(sub.Phone),
		WhatsApp:  domain.Optional(sub.WhatsApp),
		Message:   sub.Message,
	}
	h.telemetry.Metrics.LeadsReceived.WithLabelValues(string(lead.Label)).Inc()

	out := h.pipeline.Run(ctx, lead)
	if out.Notify != nil {
		// Delivery is the point of the service; its failure is the one
		// the submitter hears about.
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "notification delivery failed"})
		return
	}

	h.logger.Info("lead accepted",
		logger.String("lead_id", lead.ID),
		logger.String("label", string(lead.Label)),
		logger.Int("net_score", lead.Scores.Net))

	c.JSON(http.StatusOK, SubmitResponse{OK: true, ID: lead.ID, Label: lead.Label})
}

// Classify runs the engine against a message without side effects.
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message is required"})
		return
	}

	start := time.Now()
	result := h.engine.Classify(req.Message)
	h.telemetry.Metrics.ClassifyDuration.Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ListRules returns the active rule tables.
func (h *Handler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, RulesResponse{Rules: h.engine.Rules()})
}

// HealthCheck handles liveness checks.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.service,
		"version": h.version,
	})
}

// ReadyCheck handles readiness checks. The engine is built at startup,
// so a serving process is a ready process.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
