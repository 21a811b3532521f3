package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "objname"

// codecMetrics holds the counters of one batch process on its own registry.
type codecMetrics struct {
	registry          *prometheus.Registry
	values            *prometheus.CounterVec
	malformedEscapes  prometheus.Counter
	batchRuns         *prometheus.CounterVec
	lastBatchDuration prometheus.Gauge
}

func newCodecMetrics() *codecMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &codecMetrics{
		registry: reg,
		values: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "codec",
				Name:      "values_total",
				Help:      "Total number of values passed through the codec.",
			},
			[]string{"op", "mode"},
		),
		malformedEscapes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "codec",
				Name:      "malformed_escapes_total",
				Help:      "Total number of values rejected by strict decoding.",
			},
		),
		batchRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "batch",
				Name:      "runs_total",
				Help:      "Total number of batch runs by trigger.",
			},
			[]string{"trigger"},
		),
		lastBatchDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "batch",
				Name:      "last_duration_seconds",
				Help:      "Duration of the most recent batch run.",
			},
		),
	}
}

func modeLabel(ignoreWildcards bool) string {
	if ignoreWildcards {
		return "pattern"
	}
	return "literal"
}

func (m *codecMetrics) observeValue(op string, ignoreWildcards bool) {
	if m == nil {
		return
	}
	m.values.WithLabelValues(op, modeLabel(ignoreWildcards)).Inc()
}

func (m *codecMetrics) observeMalformed() {
	if m == nil {
		return
	}
	m.malformedEscapes.Inc()
}

func (m *codecMetrics) observeRun(trigger string, seconds float64) {
	if m == nil {
		return
	}
	m.batchRuns.WithLabelValues(trigger).Inc()
	m.lastBatchDuration.Set(seconds)
}

// writeTextfile writes the metrics in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (m *codecMetrics) writeTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
