package metrics

import (
	"math"
	"strings"
	"sync"
	"sync/atomic"
)

// labelSeparator cannot appear in valid UTF-8, so joined values never collide.
const labelSeparator = "\xff"

// atomicFloat is a float64 updated with compare-and-swap on its bit pattern.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) add(delta float64) {
	for {
		old := f.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if f.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

func (f *atomicFloat) set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *atomicFloat) load() float64 {
	return math.Float64frombits(f.bits.Load())
}

type histogramState struct {
	mu      sync.Mutex
	count   uint64
	sum     float64
	buckets []uint64 // cumulative, len(bounds)+1, last is +Inf
}

func (h *histogramState) observe(bounds []float64, v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.count++
	h.sum += v
	for i := len(bounds) - 1; i >= 0 && v <= bounds[i]; i-- {
		h.buckets[i]++
	}
	h.buckets[len(bounds)]++
}

// series is the aggregation cell for one label combination.
type series struct {
	values []string
	value  atomicFloat // counter total or gauge value
	hist   *histogramState
}

// family holds a definition and its lazily created series.
type family struct {
	def Definition

	mu     sync.RWMutex
	series map[string]*series
	order  []*series
}

func newFamily(def Definition) *family {
	return &family{
		def:    def,
		series: make(map[string]*series),
	}
}

// labelValues orders labels by the definition's label names and rejects
// missing or extra names.
func (f *family) labelValues(labels Labels) ([]string, error) {
	if len(labels) != len(f.def.LabelNames) {
		return nil, labelMismatch(f.def, labels)
	}
	values := make([]string, len(f.def.LabelNames))
	for i, name := range f.def.LabelNames {
		v, ok := labels[name]
		if !ok {
			return nil, labelMismatch(f.def, labels)
		}
		values[i] = v
	}
	return values, nil
}

func (f *family) seriesFor(labels Labels) (*series, error) {
	values, err := f.labelValues(labels)
	if err != nil {
		return nil, err
	}
	key := strings.Join(values, labelSeparator)

	f.mu.RLock()
	s, ok := f.series[key]
	f.mu.RUnlock()
	if ok {
		return s, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.series[key]; ok {
		return s, nil
	}
	s = &series{values: values}
	if f.def.Kind == KindHistogram {
		s.hist = &histogramState{buckets: make([]uint64, len(f.def.Buckets)+1)}
	}
	f.series[key] = s
	f.order = append(f.order, s)
	return s, nil
}
