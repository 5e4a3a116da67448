package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RuntimePrefix is prepended to the Go runtime and process metrics.
const RuntimePrefix = "ecommerce_"

// NewRuntimeGatherer collects Go runtime and process metrics, independent of
// request traffic, under RuntimePrefix.
func NewRuntimeGatherer() (prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWithPrefix(RuntimePrefix, reg)

	if err := wrapped.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := wrapped.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}
	return reg, nil
}
