package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inlethq/leadgate/internal/domain"
)

func sampleHigh() domain.Notification {
	email := "anna@example.com"
	return domain.Notification{
		Lead: domain.Lead{
			ID:    "lead-1",
			Label: domain.LabelHigh,
			Scores: domain.ScoreBreakdown{
				High: 11,
				Low:  0,
				Net:  11,
			},
			Reasons: domain.ReasonLists{
				High: []string{
					"Urgent timeline (asap) (+3)",
					"Asked for a quote (+2)",
				},
			},
			Email:   &email,
			Message: "I need this ASAP, please send a quote.",
		},
		Persist:      domain.StepDone(),
		Archive:      domain.StepDone(),
		AutoResponse: domain.StepDone(),
	}
}

func TestFormatHighLead(t *testing.T) {
	text := Format(sampleHigh())

	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 10)

	assert.Equal(t, "🔥 HIGH intent lead", lines[0])
	assert.Equal(t, "Score: net +11 (high 11 / low 0)", lines[1])
	assert.Equal(t, "Auto-response: ok", lines[2])
	assert.Equal(t, "Archive: ok", lines[3])
	assert.Equal(t, "Lead log: ok", lines[4])
	assert.Equal(t, "Reasons:", lines[5])
	assert.Equal(t, "  • Urgent timeline (asap) (+3)", lines[6])
	assert.Equal(t, "  • Asked for a quote (+2)", lines[7])
	assert.Equal(t, "Email: anna@example.com", lines[8])
	assert.Equal(t, "Phone: not provided", lines[9])
	assert.Equal(t, "WhatsApp: not provided", lines[10])

	assert.Contains(t, text, "Preview: I need this ASAP, please send a quote.")
	assert.True(t, strings.HasSuffix(text, "Message:\nI need this ASAP, please send a quote."))
}

func TestFormatLowLeadUsesLowReasons(t *testing.T) {
	n := domain.Notification{
		Lead: domain.Lead{
			Label:  domain.LabelLow,
			Scores: domain.ScoreBreakdown{High: 0, Low: 4, Net: -4},
			Reasons: domain.ReasonLists{
				Low: []string{"Just curious (-4)"},
			},
			Message: "just curious",
		},
		Persist:      domain.StepDone(),
		Archive:      domain.StepSkip("label is not HIGH"),
		AutoResponse: domain.StepSkip("label is not HIGH"),
	}

	text := Format(n)

	assert.Contains(t, text, "🧊 LOW intent lead")
	assert.Contains(t, text, "Score: net -4 (high 0 / low 4)")
	assert.Contains(t, text, "  • Just curious (-4)")
	assert.Contains(t, text, "Archive: skipped (label is not HIGH)")
}

func TestFormatNoMatches(t *testing.T) {
	n := domain.Notification{
		Lead: domain.Lead{
			Label:   domain.LabelLow,
			Message: "hello there",
		},
	}

	text := Format(n)

	assert.Contains(t, text, "Score: net +0 (high 0 / low 0)")
	assert.Contains(t, text, "  • no signal matched")
}

func TestFormatDuplicate(t *testing.T) {
	n := sampleHigh()
	n.Duplicate = true

	text := Format(n)

	assert.True(t, strings.HasPrefix(text, "🔥 HIGH intent lead (repeat submission)\n"))
}

func TestFormatFailedStep(t *testing.T) {
	n := sampleHigh()
	n.Archive = domain.StepFail(assertAnError{})

	text := Format(n)

	assert.Contains(t, text, "Archive: failed: archive exploded")
}

type assertAnError struct{}

func (assertAnError) Error() string { return "archive exploded" }

func TestPreview(t *testing.T) {
	short := strings.Repeat("a", 140)
	assert.Equal(t, short, Preview(short))

	long := strings.Repeat("b", 141)
	got := Preview(long)
	assert.Equal(t, strings.Repeat("b", 140)+"…", got)

	// Truncation counts runes, not bytes.
	unicode := strings.Repeat("é", 150)
	assert.Equal(t, strings.Repeat("é", 140)+"…", Preview(unicode))
}
