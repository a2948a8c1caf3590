package notify

import (
	"fmt"
	"strings"

	"github.com/inlethq/leadgate/internal/domain"
)

// previewLimit is how many characters of the message appear in the
// notification preview line before truncation.
const previewLimit = 140

const (
	markerHigh        = "🔥 HIGH intent lead"
	markerLow         = "🧊 LOW intent lead"
	markerNoMatch     = "no signal matched"
	markerNotProvided = "not provided"
)

// Format renders the channel message for one processed lead: label with
// a visual marker, the score breakdown, side-effect statuses, the
// reasons matching the assigned label, the contact fields, a truncated
// preview and the full original message.
func Format(n domain.Notification) string {
	var b strings.Builder

	if n.Lead.Label == domain.LabelHigh {
		b.WriteString(markerHigh)
	} else {
		b.WriteString(markerLow)
	}
	if n.Duplicate {
		b.WriteString(" (repeat submission)")
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Score: net %+d (high %d / low %d)\n",
		n.Lead.Scores.Net, n.Lead.Scores.High, n.Lead.Scores.Low)
	fmt.Fprintf(&b, "Auto-response: %s\n", renderStep(n.AutoResponse))
	fmt.Fprintf(&b, "Archive: %s\n", renderStep(n.Archive))
	fmt.Fprintf(&b, "Lead log: %s\n", renderStep(n.Persist))

	b.WriteString("Reasons:\n")
	reasons := n.Lead.Reasons.High
	if n.Lead.Label == domain.LabelLow {
		reasons = n.Lead.Reasons.Low
	}
	if len(reasons) == 0 {
		fmt.Fprintf(&b, "  • %s\n", markerNoMatch)
	}
	for _, reason := range reasons {
		fmt.Fprintf(&b, "  • %s\n", reason)
	}

	fmt.Fprintf(&b, "Email: %s\n", renderContact(n.Lead.Email))
	fmt.Fprintf(&b, "Phone: %s\n", renderContact(n.Lead.Phone))
	fmt.Fprintf(&b, "WhatsApp: %s\n", renderContact(n.Lead.WhatsApp))

	fmt.Fprintf(&b, "Preview: %s\n", Preview(n.Lead.Message))
	fmt.Fprintf(&b, "Message:\n%s", n.Lead.Message)

	return b.String()
}

// Preview returns the first 140 characters of a message, with a
// truncation marker when the message is longer.
func Preview(message string) string {
	runes := []rune(message)
	if len(runes) <= previewLimit {
		return message
	}
	return string(runes[:previewLimit]) + "…"
}

func renderStep(r domain.StepResult) string {
	switch r.Status {
	case domain.StepOK:
		return "ok"
	case domain.StepSkipped:
		if r.Detail != "" {
			return "skipped (" + r.Detail + ")"
		}
		return "skipped"
	case domain.StepFailed:
		return "failed: " + r.Detail
	default:
		return string(r.Status)
	}
}

func renderContact(value *string) string {
	if value == nil {
		return markerNotProvided
	}
	return *value
}
