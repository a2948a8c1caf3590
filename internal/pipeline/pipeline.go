// Package pipeline runs the post-classification side effects for an
// accepted lead: durable logging, archival of HIGH leads, the
// auto-acknowledgment email, duplicate detection, and the final
// notification. Every step except notification degrades on failure so
// a broken collaborator never loses a lead.
package pipeline

import (
	"context"
	"time"

	"github.com/inlethq/leadgate/internal/domain"
	"github.com/inlethq/leadgate/internal/logger"
	"github.com/inlethq/leadgate/internal/mailer"
	"github.com/inlethq/leadgate/internal/telemetry"
)

// LeadStore appends leads to the durable intake log.
type LeadStore interface {
	Append(lead domain.Lead) error
}

// LeadArchiver indexes HIGH leads into the secondary review store.
type LeadArchiver interface {
	IndexLead(ctx context.Context, lead domain.Lead) error
}

// Acknowledger sends the auto-acknowledgment email.
type Acknowledger interface {
	SendAcknowledgment(ctx context.Context, to string) error
}

// DuplicateChecker reports whether a message body was seen recently.
type DuplicateChecker interface {
	Seen(ctx context.Context, message string) (bool, error)
}

// Notifier delivers the final lead notification.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Outcome reports what happened to one lead across the pipeline. Notify
// is the only error the caller acts on.
type Outcome struct {
	Lead         domain.Lead
	Persist      domain.StepResult
	Archive      domain.StepResult
	AutoResponse domain.StepResult
	Duplicate    bool
	Notify       error
}

// Pipeline wires the side-effect collaborators. Archive, Acknowledge
// and Duplicates are optional and may be nil.
type Pipeline struct {
	Store      LeadStore
	Archive    LeadArchiver
	Ack        Acknowledger
	Duplicates DuplicateChecker
	Notifier   Notifier

	Telemetry *telemetry.Provider
	Logger    logger.Logger
}

// Run executes every step in order for one classified lead. Steps never
// short-circuit each other; their statuses travel in the notification
// so the reader sees exactly which ones degraded.
func (p *Pipeline) Run(ctx context.Context, lead domain.Lead) Outcome {
	out := Outcome{Lead: lead}

	out.Persist = p.persist(lead)
	out.Archive = p.archive(ctx, lead)
	out.AutoResponse = p.acknowledge(ctx, lead)
	out.Duplicate = p.checkDuplicate(ctx, lead)

	notification := domain.Notification{
		Lead:         lead,
		Persist:      out.Persist,
		Archive:      out.Archive,
		AutoResponse: out.AutoResponse,
		Duplicate:    out.Duplicate,
	}

	start := time.Now()
	out.Notify = p.Notifier.Notify(ctx, notification)
	p.Telemetry.Metrics.NotifyDuration.Observe(time.Since(start).Seconds())
	if out.Notify != nil {
		p.Telemetry.Metrics.StepFailures.WithLabelValues("notify").Inc()
	}

	return out
}

func (p *Pipeline) persist(lead domain.Lead) domain.StepResult {
	if err := p.Store.Append(lead); err != nil {
		p.Telemetry.Metrics.StepFailures.WithLabelValues("leadlog").Inc()
		p.Logger.Error("lead log append failed",
			logger.String("lead_id", lead.ID),
			logger.Error(err))
		return domain.StepFail(err)
	}
	return domain.StepDone()
}

func (p *Pipeline) archive(ctx context.Context, lead domain.Lead) domain.StepResult {
	if lead.Label != domain.LabelHigh {
		return domain.StepSkip("label is not HIGH")
	}
	if p.Archive == nil {
		return domain.StepSkip("archive not configured")
	}

	if err := p.Archive.IndexLead(ctx, lead); err != nil {
		p.Telemetry.Metrics.StepFailures.WithLabelValues("archive").Inc()
		p.Logger.Error("lead archive failed",
			logger.String("lead_id", lead.ID),
			logger.Error(err))
		return domain.StepFail(err)
	}
	return domain.StepDone()
}

func (p *Pipeline) acknowledge(ctx context.Context, lead domain.Lead) domain.StepResult {
	if lead.Label != domain.LabelHigh {
		return domain.StepSkip("label is not HIGH")
	}
	if p.Ack == nil {
		return domain.StepSkip("mailer not configured")
	}
	if lead.Email == nil {
		return domain.StepSkip("no email address")
	}
	if !mailer.PlausibleAddress(*lead.Email) {
		return domain.StepSkip("email address not plausible")
	}

	if err := p.Ack.SendAcknowledgment(ctx, *lead.Email); err != nil {
		p.Telemetry.Metrics.StepFailures.WithLabelValues("auto_response").Inc()
		p.Logger.Error("acknowledgment send failed",
			logger.String("lead_id", lead.ID),
			logger.Error(err))
		return domain.StepFail(err)
	}
	return domain.StepDone()
}

// checkDuplicate is advisory: a failed or absent checker reads as a
// fresh lead.
func (p *Pipeline) checkDuplicate(ctx context.Context, lead domain.Lead) bool {
	if p.Duplicates == nil {
		return false
	}

	seen, err := p.Duplicates.Seen(ctx, lead.Message)
	if err != nil {
		p.Telemetry.Metrics.StepFailures.WithLabelValues("dedupe").Inc()
		p.Logger.Warn("duplicate check failed",
			logger.String("lead_id", lead.ID),
			logger.Error(err))
		return false
	}
	if seen {
		p.Telemetry.Metrics.DuplicateLeads.Inc()
	}
	return seen
}
