package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderIsIsolated(t *testing.T) {
	// Two providers must not collide on metric registration.
	a := NewProvider()
	b := NewProvider()

	a.Metrics.HoneypotTripped.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.HoneypotTripped))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Metrics.HoneypotTripped))
}

func TestMetricsCounters(t *testing.T) {
	p := NewProvider()

	p.Metrics.LeadsReceived.WithLabelValues("HIGH").Inc()
	p.Metrics.LeadsReceived.WithLabelValues("HIGH").Inc()
	p.Metrics.LeadsReceived.WithLabelValues("LOW").Inc()
	p.Metrics.StepFailures.WithLabelValues("archive").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(p.Metrics.LeadsReceived.WithLabelValues("HIGH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Metrics.LeadsReceived.WithLabelValues("LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.Metrics.StepFailures.WithLabelValues("archive")))
}

func TestHandlerServesMetrics(t *testing.T) {
	p := NewProvider()
	p.Metrics.SubmissionsRejected.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	p.Handler().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "leadgate_submissions_rejected_total 1")
}
