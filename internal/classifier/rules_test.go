package classifier_test

import (
	"testing"

	"github.com/inlethq/leadgate/internal/classifier"
)

func TestDefaultRuleSet_Valid(t *testing.T) {
	rules := classifier.DefaultRuleSet()
	if err := rules.Validate(); err != nil {
		t.Fatalf("default rule set invalid: %v", err)
	}
}

func TestDefaultRuleSet_IntentIsSubsetOfHighSignals(t *testing.T) {
	rules := classifier.DefaultRuleSet()

	high := make(map[string]bool, len(rules.HighSignals))
	for _, r := range rules.HighSignals {
		high[r.Phrase] = true
	}
	for _, p := range rules.IntentSignals {
		if !high[p] {
			t.Errorf("intent phrase %q missing from high signals", p)
		}
	}
}

func TestDefaultRuleSet_GenericPositivesAreNotIntent(t *testing.T) {
	rules := classifier.DefaultRuleSet()

	intent := make(map[string]bool, len(rules.IntentSignals))
	for _, p := range rules.IntentSignals {
		intent[p] = true
	}
	for _, phrase := range []string{"premium", "retainer", "contract", "scope", "budget"} {
		if intent[phrase] {
			t.Errorf("%q must be scored but must not gate", phrase)
		}
	}
}

func TestDefaultRuleSet_PinnedWeights(t *testing.T) {
	rules := classifier.DefaultRuleSet()

	wantHigh := map[string]int{
		"asap":     3,
		"proposal": 2,
		"quote":    2,
		"within":   2,
		"budget":   2,
	}
	wantLow := map[string]int{
		"just curious": 4,
		"maybe later":  3,
		"not sure":     3,
		"anything":     2,
		"cheap":        3,
		"free":         4,
	}

	got := make(map[string]int, len(rules.HighSignals))
	for _, r := range rules.HighSignals {
		got[r.Phrase] = r.Points
	}
	for phrase, points := range wantHigh {
		if got[phrase] != points {
			t.Errorf("high signal %q = %d points, want %d", phrase, got[phrase], points)
		}
	}

	got = make(map[string]int, len(rules.LowSignals))
	for _, r := range rules.LowSignals {
		got[r.Phrase] = r.Points
	}
	for phrase, points := range wantLow {
		if got[phrase] != points {
			t.Errorf("low signal %q = %d points, want %d", phrase, got[phrase], points)
		}
	}
}
