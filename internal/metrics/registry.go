// Package metrics aggregates counters, gauges and histograms keyed by label
// sets and renders them in the Prometheus text exposition format.
package metrics

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"

	"github.com/prometheus/common/model"
)

type Kind int

const (
	KindCounter Kind = iota + 1
	KindGauge
	KindHistogram
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindHistogram:
		return "histogram"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DefaultBuckets is used for histograms registered without explicit buckets.
var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Definition describes a single metric. It is copied on registration and
// never changes afterwards.
type Definition struct {
	Name       string
	Help       string
	Kind       Kind
	LabelNames []string
	// Buckets are upper bounds for histograms, strictly increasing. +Inf is implicit.
	Buckets []float64
}

// Labels maps label names to values. Order is irrelevant: values are keyed by
// the definition's label names.
type Labels map[string]string

// Registry owns metric definitions and their live aggregation state.
type Registry struct {
	mu       sync.RWMutex
	families map[string]*family
	order    []*family
}

func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]*family),
	}
}

func (r *Registry) Register(def Definition) error {
	def, err := normalizeDefinition(def)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.families[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMetric, def.Name)
	}
	f := newFamily(def)
	r.families[def.Name] = f
	r.order = append(r.order, f)
	return nil
}

// MustRegister registers every definition and panics on the first failure.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// Definitions returns copies of the registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, len(r.order))
	for i, f := range r.order {
		defs[i] = copyDefinition(f.def)
	}
	return defs
}

func (r *Registry) Inc(name string, labels Labels) error {
	return r.Add(name, labels, 1)
}

func (r *Registry) Add(name string, labels Labels, delta float64) error {
	if delta < 0 || math.IsNaN(delta) {
		return fmt.Errorf("%w: counter %s delta %v", ErrInvalidValue, name, delta)
	}
	s, err := r.lookup(name, KindCounter, labels)
	if err != nil {
		return err
	}
	s.value.add(delta)
	return nil
}

func (r *Registry) Set(name string, labels Labels, value float64) error {
	s, err := r.lookup(name, KindGauge, labels)
	if err != nil {
		return err
	}
	s.value.set(value)
	return nil
}

func (r *Registry) Observe(name string, labels Labels, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: histogram %s observed NaN", ErrInvalidValue, name)
	}
	f, err := r.family(name, KindHistogram)
	if err != nil {
		return err
	}
	s, err := f.seriesFor(labels)
	if err != nil {
		return err
	}
	s.hist.observe(f.def.Buckets, value)
	return nil
}

func (r *Registry) lookup(name string, kind Kind, labels Labels) (*series, error) {
	f, err := r.family(name, kind)
	if err != nil {
		return nil, err
	}
	return f.seriesFor(labels)
}

func (r *Registry) family(name string, kind Kind) (*family, error) {
	r.mu.RLock()
	f, ok := r.families[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
	if f.def.Kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrWrongKind, name, f.def.Kind, kind)
	}
	return f, nil
}

func normalizeDefinition(def Definition) (Definition, error) {
	def = copyDefinition(def)

	if !model.LegacyValidation.IsValidMetricName(def.Name) {
		return def, fmt.Errorf("%w: invalid name %q", ErrInvalidDefinition, def.Name)
	}
	switch def.Kind {
	case KindCounter, KindGauge:
		if len(def.Buckets) > 0 {
			return def, fmt.Errorf("%w: %s: buckets are only valid for histograms", ErrInvalidDefinition, def.Name)
		}
	case KindHistogram:
		if len(def.Buckets) == 0 {
			def.Buckets = slices.Clone(DefaultBuckets)
		}
		for i, b := range def.Buckets {
			if math.IsNaN(b) || math.IsInf(b, 0) {
				return def, fmt.Errorf("%w: %s: bucket %v is not finite", ErrInvalidDefinition, def.Name, b)
			}
			if i > 0 && b <= def.Buckets[i-1] {
				return def, fmt.Errorf("%w: %s: buckets must be strictly increasing", ErrInvalidDefinition, def.Name)
			}
		}
	default:
		return def, fmt.Errorf("%w: %s: unknown kind %s", ErrInvalidDefinition, def.Name, def.Kind)
	}

	seen := make(map[string]struct{}, len(def.LabelNames))
	for _, name := range def.LabelNames {
		if !model.LegacyValidation.IsValidLabelName(name) || name == model.MetricNameLabel {
			return def, fmt.Errorf("%w: %s: invalid label name %q", ErrInvalidDefinition, def.Name, name)
		}
		if def.Kind == KindHistogram && name == model.BucketLabel {
			return def, fmt.Errorf("%w: %s: label %q is reserved for histograms", ErrInvalidDefinition, def.Name, name)
		}
		if _, dup := seen[name]; dup {
			return def, fmt.Errorf("%w: %s: duplicate label name %q", ErrInvalidDefinition, def.Name, name)
		}
		seen[name] = struct{}{}
	}
	return def, nil
}

func copyDefinition(def Definition) Definition {
	def.LabelNames = slices.Clone(def.LabelNames)
	def.Buckets = slices.Clone(def.Buckets)
	return def
}

func labelMismatch(def Definition, labels Labels) error {
	got := make([]string, 0, len(labels))
	for name := range labels {
		got = append(got, name)
	}
	sort.Strings(got)
	return fmt.Errorf("%w: %s expects %v, got %v", ErrLabelMismatch, def.Name, def.LabelNames, got)
}
