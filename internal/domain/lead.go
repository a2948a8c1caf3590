package domain

import (
	"strings"
	"time"
)

// Submission is one inbound form payload as received by the intake
// endpoint, before validation.
type Submission struct {
	Email    string `json:"email"    form:"email"`
	Phone    string `json:"phone"    form:"phone"`
	WhatsApp string `json:"whatsapp" form:"whatsapp"`
	Message  string `json:"message"  form:"message"`

	// Company is the anti-automation honeypot. Humans never see the
	// field; a non-empty value means the submission is silently dropped.
	Company string `json:"company" form:"company"`
}

// HasContact reports whether at least one contact field is present and
// non-empty after trimming.
func (s *Submission) HasContact() bool {
	return Present(s.Email) || Present(s.Phone) || Present(s.WhatsApp)
}

// Present reports whether an optional field carries a value after trimming.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Optional trims an inbound field and returns nil when it is empty,
// making absence explicit in persisted records.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Lead is one accepted inquiry: the classified submission plus identity
// and creation time. It is the self-contained record appended to the
// lead log and archived for HIGH labels.
type Lead struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Label     Label          `json:"label"`
	Scores    ScoreBreakdown `json:"scores"`
	Reasons   ReasonLists    `json:"reasons"`
	Email     *string        `json:"email,omitempty"`
	Phone     *string        `json:"phone,omitempty"`
	WhatsApp  *string        `json:"whatsapp,omitempty"`
	Message   string         `json:"message"`
}
