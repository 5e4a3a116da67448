package metrics

import "slices"

// Snapshot is a point-in-time copy of the registry. Later observations do not
// affect it.
type Snapshot struct {
	Families []FamilySnapshot
}

type FamilySnapshot struct {
	Definition Definition
	Series     []SeriesSnapshot
}

type LabelPair struct {
	Name  string
	Value string
}

type SeriesSnapshot struct {
	Labels []LabelPair
	// Value is the counter total or gauge value.
	Value float64

	Count   uint64
	Sum     float64
	Buckets []uint64 // cumulative, last entry is the +Inf bucket
}

// Family returns the snapshot of the named metric.
func (s Snapshot) Family(name string) (FamilySnapshot, bool) {
	for _, f := range s.Families {
		if f.Definition.Name == name {
			return f, true
		}
	}
	return FamilySnapshot{}, false
}

// Find returns the series whose labels equal the given set.
func (f FamilySnapshot) Find(labels Labels) (SeriesSnapshot, bool) {
	for _, s := range f.Series {
		if len(s.Labels) != len(labels) {
			continue
		}
		match := true
		for _, lp := range s.Labels {
			if v, ok := labels[lp.Name]; !ok || v != lp.Value {
				match = false
				break
			}
		}
		if match {
			return s, true
		}
	}
	return SeriesSnapshot{}, false
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	families := slices.Clone(r.order)
	r.mu.RUnlock()

	snap := Snapshot{Families: make([]FamilySnapshot, 0, len(families))}
	for _, f := range families {
		snap.Families = append(snap.Families, f.snapshot())
	}
	return snap
}

func (f *family) snapshot() FamilySnapshot {
	f.mu.RLock()
	cells := slices.Clone(f.order)
	f.mu.RUnlock()

	out := FamilySnapshot{
		Definition: copyDefinition(f.def),
		Series:     make([]SeriesSnapshot, 0, len(cells)),
	}
	for _, s := range cells {
		ss := SeriesSnapshot{Labels: make([]LabelPair, len(s.values))}
		for i, v := range s.values {
			ss.Labels[i] = LabelPair{Name: f.def.LabelNames[i], Value: v}
		}
		if s.hist != nil {
			s.hist.mu.Lock()
			ss.Count = s.hist.count
			ss.Sum = s.hist.sum
			ss.Buckets = slices.Clone(s.hist.buckets)
			s.hist.mu.Unlock()
		} else {
			ss.Value = s.value.load()
		}
		out.Series = append(out.Series, ss)
	}
	return out
}
