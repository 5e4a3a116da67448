package metrics

import (
	"fmt"
	"io"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Exporter renders registry snapshots in the Prometheus text format.
type Exporter struct {
	registry *Registry
	runtime  prometheus.Gatherer
}

// NewExporter creates an exporter for the registry. The runtime gatherer is
// optional; its families are written after the registry's.
func NewExporter(registry *Registry, runtime prometheus.Gatherer) *Exporter {
	return &Exporter{
		registry: registry,
		runtime:  runtime,
	}
}

func (e *Exporter) ContentType() string {
	return string(expfmt.NewFormat(expfmt.TypeTextPlain))
}

// WriteTo renders a fresh snapshot of the registry followed by runtime metrics.
func (e *Exporter) WriteTo(w io.Writer) error {
	if err := e.Render(w, e.registry.Snapshot()); err != nil {
		return err
	}
	if e.runtime == nil {
		return nil
	}

	families, err := e.runtime.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather runtime metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Render writes every family of the snapshot in order. Families without
// series still get their HELP and TYPE lines.
func (e *Exporter) Render(w io.Writer, snap Snapshot) error {
	for _, f := range snap.Families {
		if len(f.Series) == 0 {
			if err := writePreamble(w, f.Definition); err != nil {
				return err
			}
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, toMetricFamily(f)); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Definition.Name, err)
		}
	}
	return nil
}

// writePreamble covers families that have not been observed yet, which
// MetricFamilyToText rejects.
func writePreamble(w io.Writer, def Definition) error {
	var buf []byte
	if def.Help != "" {
		buf = fmt.Appendf(buf, "# HELP %s %s\n", def.Name, escapeHelp(def.Help))
	}
	buf = fmt.Appendf(buf, "# TYPE %s %s\n", def.Name, def.Kind)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", def.Name, err)
	}
	return nil
}

func escapeHelp(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func toMetricFamily(f FamilySnapshot) *dto.MetricFamily {
	def := f.Definition
	mf := &dto.MetricFamily{
		Name:   proto.String(def.Name),
		Metric: make([]*dto.Metric, 0, len(f.Series)),
	}
	if def.Help != "" {
		mf.Help = proto.String(def.Help)
	}
	switch def.Kind {
	case KindCounter:
		mf.Type = dto.MetricType_COUNTER.Enum()
	case KindGauge:
		mf.Type = dto.MetricType_GAUGE.Enum()
	case KindHistogram:
		mf.Type = dto.MetricType_HISTOGRAM.Enum()
	}

	for _, s := range f.Series {
		m := &dto.Metric{Label: make([]*dto.LabelPair, len(s.Labels))}
		for i, lp := range s.Labels {
			m.Label[i] = &dto.LabelPair{Name: proto.String(lp.Name), Value: proto.String(lp.Value)}
		}
		switch def.Kind {
		case KindCounter:
			m.Counter = &dto.Counter{Value: proto.Float64(s.Value)}
		case KindGauge:
			m.Gauge = &dto.Gauge{Value: proto.Float64(s.Value)}
		case KindHistogram:
			m.Histogram = toHistogram(def.Buckets, s)
		}
		mf.Metric = append(mf.Metric, m)
	}
	return mf
}

func toHistogram(bounds []float64, s SeriesSnapshot) *dto.Histogram {
	h := &dto.Histogram{
		SampleCount: proto.Uint64(s.Count),
		SampleSum:   proto.Float64(s.Sum),
		Bucket:      make([]*dto.Bucket, 0, len(s.Buckets)),
	}
	for i, count := range s.Buckets {
		upper := math.Inf(+1)
		if i < len(bounds) {
			upper = bounds[i]
		}
		h.Bucket = append(h.Bucket, &dto.Bucket{
			CumulativeCount: proto.Uint64(count),
			UpperBound:      proto.Float64(upper),
		})
	}
	return h
}
