package domain

// Label is the intent label assigned to a lead.
type Label string

const (
	// LabelHigh marks a lead with concrete buying intent.
	LabelHigh Label = "HIGH"
	// LabelLow marks everything else, including vetoed and empty messages.
	LabelLow Label = "LOW"
)

// ScoreBreakdown holds the aggregated signal scores for one classification.
// Net is always High - Low.
type ScoreBreakdown struct {
	High int `json:"high_score"`
	Low  int `json:"low_score"`
	Net  int `json:"net_score"`
}

// ReasonLists holds the rendered reason strings for both signal sets,
// in rule declaration order. Both lists are always populated so the
// result is fully informative regardless of the final label.
type ReasonLists struct {
	High []string `json:"high"`
	Low  []string `json:"low"`
}

// ClassificationResult is the complete, immutable outcome of classifying
// one message. It is constructed fresh per call and has no identity beyond
// the call that produced it.
type ClassificationResult struct {
	Label           Label          `json:"label"`
	Scores          ScoreBreakdown `json:"scores"`
	Reasons         ReasonLists    `json:"reasons"`
	HasIntentSignal bool           `json:"has_intent_signal"`
	HasHardNegative bool           `json:"has_hard_negative"`
}
