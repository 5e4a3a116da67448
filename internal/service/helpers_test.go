package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"ecommerce/internal/config"
	"ecommerce/internal/metrics"
)

func newRecorder(t *testing.T) (*metrics.Recorder, *metrics.Registry) {
	t.Helper()
	reg := metrics.NewRegistry()
	rec, err := metrics.NewRecorder(reg,
		&config.MetricsConfig{Enabled: true, DetailedLabels: true},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return rec, reg
}

// counterValue returns the value of the series, or 0 when it was never observed.
func counterValue(reg *metrics.Registry, name string, labels metrics.Labels) float64 {
	f, ok := reg.Snapshot().Family(name)
	if !ok {
		return 0
	}
	s, ok := f.Find(labels)
	if !ok {
		return 0
	}
	return s.Value
}

func storeCalls(reg *metrics.Registry, op metrics.StoreOperation, entity metrics.Entity) uint64 {
	f, ok := reg.Snapshot().Family(metrics.DBOperationDurationSeconds)
	if !ok {
		return 0
	}
	s, ok := f.Find(metrics.Labels{"operation": string(op), "entity": string(entity)})
	if !ok {
		return 0
	}
	return s.Count
}

type namer map[int]string

func (n namer) Name(_ context.Context, id int) string {
	if name, ok := n[id]; ok {
		return name
	}
	return "Product ?"
}
