package domain

import (
	"fmt"
	"strings"
)

// SignalRule is one phrase/points/reason triple. A rule contributes its
// full point value exactly once when its phrase occurs anywhere in the
// lowercased message, regardless of how many times the phrase repeats.
type SignalRule struct {
	// Phrase is the lowercase phrase searched for as a plain substring.
	Phrase string `json:"phrase" yaml:"phrase"`
	// Points is the weight the rule contributes when matched. Always > 0.
	Points int `json:"points" yaml:"points"`
	// Reason is the human-readable label rendered into the result.
	Reason string `json:"reason" yaml:"reason"`
}

// RuleSet is the immutable classification configuration: two ordered
// signal tables, the intent gate phrases and the hard-negative phrases.
// Order of the signal tables is insignificant for scoring but fixes the
// reason ordering in results.
type RuleSet struct {
	HighSignals []SignalRule `json:"high_signals" yaml:"high_signals"`
	LowSignals  []SignalRule `json:"low_signals"  yaml:"low_signals"`

	// IntentSignals gate the HIGH label. They must be a subset of the
	// high-signal phrases: weighting and gating are independent data
	// structures by design, but have to stay in sync.
	IntentSignals []string `json:"intent_signals" yaml:"intent_signals"`

	// HardNegatives force LOW regardless of score.
	HardNegatives []string `json:"hard_negatives" yaml:"hard_negatives"`
}

// Validate checks the structural invariants of a rule set. It does not
// mutate the set.
func (rs *RuleSet) Validate() error {
	high := make(map[string]bool, len(rs.HighSignals))
	if err := validateSignals("high", rs.HighSignals, high); err != nil {
		return err
	}
	if err := validateSignals("low", rs.LowSignals, make(map[string]bool, len(rs.LowSignals))); err != nil {
		return err
	}

	seen := make(map[string]bool, len(rs.IntentSignals))
	for _, p := range rs.IntentSignals {
		if err := validatePhrase("intent", p); err != nil {
			return err
		}
		if !high[p] {
			return fmt.Errorf("intent phrase %q is not a high-signal phrase", p)
		}
		if seen[p] {
			return fmt.Errorf("duplicate intent phrase %q", p)
		}
		seen[p] = true
	}

	seen = make(map[string]bool, len(rs.HardNegatives))
	for _, p := range rs.HardNegatives {
		if err := validatePhrase("hard-negative", p); err != nil {
			return err
		}
		if seen[p] {
			return fmt.Errorf("duplicate hard-negative phrase %q", p)
		}
		seen[p] = true
	}

	return nil
}

func validateSignals(set string, rules []SignalRule, phrases map[string]bool) error {
	for _, r := range rules {
		if err := validatePhrase(set, r.Phrase); err != nil {
			return err
		}
		if r.Points <= 0 {
			return fmt.Errorf("%s-signal phrase %q has non-positive points %d", set, r.Phrase, r.Points)
		}
		if r.Reason == "" {
			return fmt.Errorf("%s-signal phrase %q has no reason", set, r.Phrase)
		}
		if phrases[r.Phrase] {
			return fmt.Errorf("duplicate %s-signal phrase %q", set, r.Phrase)
		}
		phrases[r.Phrase] = true
	}
	return nil
}

func validatePhrase(set, phrase string) error {
	if phrase == "" {
		return fmt.Errorf("empty %s phrase", set)
	}
	if phrase != strings.ToLower(phrase) {
		return fmt.Errorf("%s phrase %q is not lowercase", set, phrase)
	}
	return nil
}
