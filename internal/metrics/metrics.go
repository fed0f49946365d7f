package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/patchbind/core/binder"
)

// Metrics tracks request binding outcomes.
type Metrics struct {
	BindTotal     *prometheus.CounterVec
	BindDuration  prometheus.Histogram
	TouchedFields prometheus.Histogram
}

// New creates the binding metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BindTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "patchbind_bind_total",
			Help: "Total number of bind attempts by mode and result",
		}, []string{"mode", "result"}),
		BindDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "patchbind_bind_duration_seconds",
			Help:    "Duration of request binding",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
		TouchedFields: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "patchbind_touched_fields",
			Help:    "Number of fields populated by a successful partial bind",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		}),
	}
}

// Instrument wraps b so every call is counted and timed.
func (m *Metrics) Instrument(b binder.Binder) binder.Binder {
	return func(r *http.Request, v any) error {
		start := time.Now()
		err := b(r, v)
		m.BindDuration.Observe(time.Since(start).Seconds())

		mode := "ordinary"
		p, partial := v.(binder.Partial)
		if partial {
			mode = "partial"
		}
		m.BindTotal.WithLabelValues(mode, Result(err)).Inc()

		if err == nil && partial {
			if tp, ok := p.(interface{ Touched() binder.Touched }); ok {
				m.TouchedFields.Observe(float64(tp.Touched().Len()))
			}
		}
		return err
	}
}

// Result classifies a bind error into a low-cardinality label value.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, binder.ErrBodyTooLarge):
		return "body_too_large"
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return "unsupported_media_type"
	case errors.Is(err, binder.ErrBodyFormat), errors.Is(err, binder.ErrFailedToParseJSON):
		return "body_format"
	case errors.Is(err, binder.ErrTypeConversion),
		errors.Is(err, binder.ErrFailedToParsePath),
		errors.Is(err, binder.ErrFailedToParseQuery):
		return "type_conversion"
	default:
		return "error"
	}
}
