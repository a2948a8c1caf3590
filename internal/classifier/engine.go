// Package classifier implements the lead classification engine: a
// deterministic weighted-keyword scoring model with an intent gate and a
// hard-negative veto. Classification is a pure, total function over free
// text; it performs no I/O and is safe for concurrent use.
package classifier

import (
	"fmt"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/inlethq/leadgate/internal/domain"
)

// highIntentThreshold is the minimum net score for a HIGH label. It is
// hand-tuned together with the rule weights; the decision additionally
// requires an intent-set match and the absence of hard negatives.
const highIntentThreshold = 3

// Engine classifies messages against a fixed rule set. It is immutable
// after construction: one Aho-Corasick automaton per phrase set, built
// once, shared by any number of concurrent Classify calls without
// locking.
type Engine struct {
	rules    domain.RuleSet
	high     *ahocorasick.Matcher
	low      *ahocorasick.Matcher
	intent   *ahocorasick.Matcher
	negative *ahocorasick.Matcher
}

// NewEngine validates the rule set and builds the matchers.
func NewEngine(rules domain.RuleSet) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}

	return &Engine{
		rules:    rules,
		high:     matcherFor(signalPhrases(rules.HighSignals)),
		low:      matcherFor(signalPhrases(rules.LowSignals)),
		intent:   matcherFor(rules.IntentSignals),
		negative: matcherFor(rules.HardNegatives),
	}, nil
}

// Rules returns the rule set the engine was built from.
func (e *Engine) Rules() domain.RuleSet {
	return e.rules
}

// Classify labels one message. The message is lowercased and each phrase
// is searched for as a plain substring: no trimming, no Unicode
// normalization, no word boundaries ("by" matches inside "standby").
// A matched rule scores exactly once. Classify never fails; an empty
// message yields LOW with zero scores and empty reason lists.
func (e *Engine) Classify(message string) domain.ClassificationResult {
	text := []byte(strings.ToLower(message))

	matchedHigh := hitSet(e.high, text)
	matchedLow := hitSet(e.low, text)
	hasIntent := anyHit(e.intent, text)
	hasNegative := anyHit(e.negative, text)

	var highScore int
	highReasons := make([]string, 0, len(matchedHigh))
	for i, r := range e.rules.HighSignals {
		if matchedHigh[i] {
			highScore += r.Points
			highReasons = append(highReasons, fmt.Sprintf("%s (+%d)", r.Reason, r.Points))
		}
	}

	var lowScore int
	lowReasons := make([]string, 0, len(matchedLow))
	for i, r := range e.rules.LowSignals {
		if matchedLow[i] {
			lowScore += r.Points
			lowReasons = append(lowReasons, fmt.Sprintf("%s (-%d)", r.Reason, r.Points))
		}
	}

	net := highScore - lowScore

	label := domain.LabelLow
	if !hasNegative && hasIntent && net >= highIntentThreshold {
		label = domain.LabelHigh
	}

	return domain.ClassificationResult{
		Label: label,
		Scores: domain.ScoreBreakdown{
			High: highScore,
			Low:  lowScore,
			Net:  net,
		},
		Reasons: domain.ReasonLists{
			High: highReasons,
			Low:  lowReasons,
		},
		HasIntentSignal: hasIntent,
		HasHardNegative: hasNegative,
	}
}

func signalPhrases(rules []domain.SignalRule) []string {
	phrases := make([]string, len(rules))
	for i, r := range rules {
		phrases[i] = r.Phrase
	}
	return phrases
}

func matcherFor(phrases []string) *ahocorasick.Matcher {
	if len(phrases) == 0 {
		return nil
	}
	return ahocorasick.NewStringMatcher(phrases)
}

// hitSet returns the set of phrase indices found in text. The matcher
// reports each dictionary entry at most once, which gives the
// count-once-per-rule semantics directly.
func hitSet(m *ahocorasick.Matcher, text []byte) map[int]bool {
	if m == nil {
		return nil
	}
	hits := m.Match(text)
	set := make(map[int]bool, len(hits))
	for _, h := range hits {
		set[h] = true
	}
	return set
}

func anyHit(m *ahocorasick.Matcher, text []byte) bool {
	if m == nil {
		return false
	}
	return len(m.Match(text)) > 0
}
