package leadlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inlethq/leadgate/internal/domain"
)

func sampleLead(id string) domain.Lead {
	email := "anna@example.com"
	return domain.Lead{
		ID:        id,
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Label:     domain.LabelHigh,
		Scores:    domain.ScoreBreakdown{High: 5, Net: 5},
		Reasons:   domain.ReasonLists{High: []string{"Urgent timeline (asap) (+3)"}},
		Email:     &email,
		Message:   "need this asap",
	}
}

func readLines(t *testing.T, path string) []domain.Lead {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var leads []domain.Lead
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var lead domain.Lead
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &lead))
		leads = append(leads, lead)
	}
	require.NoError(t, scanner.Err())
	return leads
}

func TestAppendWritesOneLinePerLead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.Append(sampleLead("lead-1")))
	require.NoError(t, log.Append(sampleLead("lead-2")))

	leads := readLines(t, path)
	require.Len(t, leads, 2)
	assert.Equal(t, "lead-1", leads[0].ID)
	assert.Equal(t, "lead-2", leads[1].ID)
	assert.Equal(t, domain.LabelHigh, leads[0].Label)
	require.NotNil(t, leads[0].Email)
	assert.Equal(t, "anna@example.com", *leads[0].Email)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "leads.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.Append(sampleLead("lead-1")))
	assert.FileExists(t, path)
}

func TestReopenAppendsInsteadOfTruncating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Append(sampleLead("lead-1")))
	require.NoError(t, log.Close())

	log, err = Open(path)
	require.NoError(t, err)
	defer log.Close()
	require.NoError(t, log.Append(sampleLead("lead-2")))

	leads := readLines(t, path)
	require.Len(t, leads, 2)
}

func TestOmittedContactsStayOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.jsonl")

	log, err := Open(path)
	require.NoError(t, err)
	defer log.Close()

	lead := sampleLead("lead-1")
	lead.Email = nil
	require.NoError(t, log.Append(lead))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"email"`)
	assert.NotContains(t, string(raw), `"phone"`)
}
