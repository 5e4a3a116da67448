package metrics

import (
	"cmp"
	"fmt"
	"sync"
	"time"
)

// UnmatchedRoute labels requests that did not match any registered route, so
// raw paths never become label values.
const UnmatchedRoute = "unmatched"

// Timer measures elapsed time on the monotonic clock reading carried by
// time.Now, so wall clock adjustments do not affect it.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

func (t Timer) Elapsed() time.Duration {
	return max(time.Since(t.start), 0)
}

func (t Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

type HTTPSink interface {
	RecordHTTP(m HTTPMetric)
}

// RequestObservation is the per-request handle between request start and the
// moment the final status is committed.
type RequestObservation struct {
	sink   HTTPSink
	method string
	path   string
	timer  Timer
	once   sync.Once
}

func StartRequest(sink HTTPSink, method, rawPath string) *RequestObservation {
	return &RequestObservation{
		sink:   sink,
		method: method,
		path:   rawPath,
		timer:  StartTimer(),
	}
}

func (o *RequestObservation) Path() string {
	return o.path
}

// Finish emits the request metric. Only the first call has an effect; an
// empty route falls back to UnmatchedRoute.
func (o *RequestObservation) Finish(route string, statusCode int) error {
	var err error
	o.once.Do(func() {
		duration := o.timer.Elapsed()
		if statusCode <= 0 {
			err = fmt.Errorf("%w: %s %s", ErrMissingStatus, o.method, o.path)
			return
		}
		o.sink.RecordHTTP(HTTPMetric{
			Method:     o.method,
			Route:      cmp.Or(route, UnmatchedRoute),
			StatusCode: statusCode,
			Duration:   duration,
		})
	})
	return err
}
