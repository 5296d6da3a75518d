package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.OrderOutcome("create", "created")
	m.OrderOutcome("create", "created")
	m.OrderOutcome("create", "sold_out")
	m.StockReleased("expired")
	m.SweepFinished(3, 20*time.Millisecond)
	m.SweepFinished(0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.outcomes.WithLabelValues("create", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("create", "sold_out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.releases.WithLabelValues("expired")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sweeps))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sweepExpired))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
