package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/inlethq/leadgate/internal/domain"
)

// Signal set names as stored in the signal_rules table.
const (
	SetHigh     = "high"
	SetLow      = "low"
	SetNegative = "negative"
)

// SignalRulesRepository reads classification rule sets from Postgres.
// Row position fixes the reason ordering, mirroring the declaration
// order of the built-in tables.
type SignalRulesRepository struct {
	db *sqlx.DB
}

// NewSignalRulesRepository creates a new rules repository.
func NewSignalRulesRepository(db *sqlx.DB) *SignalRulesRepository {
	return &SignalRulesRepository{db: db}
}

// LoadRuleSet loads all enabled rules into a rule set. It returns nil
// when the table holds no enabled rules, letting the caller fall back
// to the built-in tables.
func (r *SignalRulesRepository) LoadRuleSet(ctx context.Context) (*domain.RuleSet, error) {
	query := `
		SELECT set_name, phrase, points, reason, intent
		FROM signal_rules
		WHERE enabled = true
		ORDER BY set_name, position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query signal rules: %w", err)
	}
	defer rows.Close()

	var rs domain.RuleSet
	var count int

	for rows.Next() {
		var (
			setName, phrase, reason string
			points                  int
			intent                  bool
		)
		if err := rows.Scan(&setName, &phrase, &points, &reason, &intent); err != nil {
			return nil, fmt.Errorf("scan signal rule: %w", err)
		}
		count++

		switch setName {
		case SetHigh:
			rs.HighSignals = append(rs.HighSignals, domain.SignalRule{
				Phrase: phrase,
				Points: points,
				Reason: reason,
			})
			if intent {
				rs.IntentSignals = append(rs.IntentSignals, phrase)
			}
		case SetLow:
			rs.LowSignals = append(rs.LowSignals, domain.SignalRule{
				Phrase: phrase,
				Points: points,
				Reason: reason,
			})
		case SetNegative:
			rs.HardNegatives = append(rs.HardNegatives, phrase)
		default:
			return nil, fmt.Errorf("unknown signal set %q for phrase %q", setName, phrase)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate signal rules: %w", err)
	}

	if count == 0 {
		return nil, nil
	}
	return &rs, nil
}
