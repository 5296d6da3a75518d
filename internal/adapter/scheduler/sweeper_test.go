package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/dropshop/internal/adapter/metrics"
	"github.com/MikeRez0/dropshop/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMetrics(t *testing.T) *metrics.Prometheus {
	t.Helper()
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestExpirationSweeper(t *testing.T) {
	tests := []struct {
		name    string
		results []error
	}{
		{name: "Sweeps repeatedly", results: []error{nil, nil}},
		{name: "Keeps going after a failed sweep", results: []error{errors.New("db down"), nil}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			expirer := mock.NewMockOrderExpirer(ctrl)

			calls := make(chan struct{}, 16)
			call := 0
			expirer.EXPECT().ExpirePendingOrders(gomock.Any()).
				DoAndReturn(func(context.Context) (int, error) {
					var err error
					if call < len(test.results) {
						err = test.results[call]
					}
					call++
					select {
					case calls <- struct{}{}:
					default:
					}
					return 1, err
				}).MinTimes(len(test.results))

			s, err := NewExpirationSweeper(expirer, newTestMetrics(t), 5*time.Millisecond, zap.NewNop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			s.Start(ctx)

			for range test.results {
				select {
				case <-calls:
				case <-time.After(time.Second):
					t.Fatal("sweeper did not run")
				}
			}
			cancel()

			select {
			case <-s.Done():
			case <-time.After(time.Second):
				t.Fatal("sweeper did not stop")
			}
		})
	}
}

func TestExpirationSweeper_RecordsRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	expirer := mock.NewMockOrderExpirer(ctrl)
	expirer.EXPECT().ExpirePendingOrders(gomock.Any()).Return(3, nil)

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	s, err := NewExpirationSweeper(expirer, m, time.Hour, zap.NewNop())
	require.NoError(t, err)
	s.sweep(context.Background())

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, f := range families {
		if f.GetType().String() == "COUNTER" {
			values[f.GetName()] = f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["dropshop_sweeper_runs_total"])
	assert.Equal(t, 3.0, values["dropshop_sweeper_expired_total"])
	n, err := testutil.GatherAndCount(reg, "dropshop_sweeper_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewExpirationSweeper_DefaultInterval(t *testing.T) {
	s, err := NewExpirationSweeper(nil, nil, 0, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, s.interval)
}
