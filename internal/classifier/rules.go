package classifier

import "github.com/inlethq/leadgate/internal/domain"

// Rule weights. Hand-tuned against the default tables; their interaction
// with the intent gate and the threshold is deliberate, so change rules,
// not the algorithm.
const (
	pointsDecisive = 4
	pointsStrong   = 3
	pointsModerate = 2
)

// DefaultRuleSet returns the built-in signal tables. Table order fixes
// the reason ordering in results; scoring itself is order-independent.
func DefaultRuleSet() domain.RuleSet {
	return domain.RuleSet{
		HighSignals: []domain.SignalRule{
			{Phrase: "asap", Points: pointsStrong, Reason: "Urgent timeline (asap)"},
			{Phrase: "urgent", Points: pointsStrong, Reason: "Urgent timeline (urgent)"},
			{Phrase: "deadline", Points: pointsStrong, Reason: "Deadline mentioned"},
			{Phrase: "schedule a call", Points: pointsStrong, Reason: "Wants to schedule a call"},
			{Phrase: "proposal", Points: pointsModerate, Reason: "Asked for a proposal"},
			{Phrase: "quote", Points: pointsModerate, Reason: "Asked for a quote"},
			{Phrase: "within", Points: pointsModerate, Reason: "Concrete timeframe"},
			{Phrase: "budget", Points: pointsModerate, Reason: "Budget mentioned"},
			{Phrase: "premium", Points: pointsModerate, Reason: "Premium interest"},
			{Phrase: "retainer", Points: pointsModerate, Reason: "Retainer interest"},
			{Phrase: "contract", Points: pointsModerate, Reason: "Contract mentioned"},
			{Phrase: "scope", Points: pointsModerate, Reason: "Scope discussion"},
		},
		LowSignals: []domain.SignalRule{
			{Phrase: "just curious", Points: pointsDecisive, Reason: "Just curious"},
			{Phrase: "just looking", Points: pointsStrong, Reason: "Just looking"},
			{Phrase: "maybe later", Points: pointsStrong, Reason: "Maybe later"},
			{Phrase: "not sure", Points: pointsStrong, Reason: "Not sure yet"},
			{Phrase: "anything", Points: pointsModerate, Reason: "Unspecific request"},
			{Phrase: "cheap", Points: pointsStrong, Reason: "Shopping for cheap"},
			{Phrase: "free", Points: pointsDecisive, Reason: "Wants it free"},
			{Phrase: "no budget", Points: pointsDecisive, Reason: "No budget"},
		},

		// Concrete commitment signals only: timelines, deliverables,
		// scheduling. Generic positives (premium, retainer, contract,
		// scope, budget) are scored but never gate.
		IntentSignals: []string{
			"asap",
			"urgent",
			"deadline",
			"schedule a call",
			"proposal",
			"quote",
			"within",
		},

		// Known abuse patterns; any match forces LOW.
		HardNegatives: []string{
			"hookup",
			"onlyfans",
			"seo services",
			"guest post",
			"backlink",
			"bitcoin investment",
			"escort",
		},
	}
}
