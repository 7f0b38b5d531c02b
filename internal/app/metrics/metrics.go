package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "meeting-insights/internal/app/errors"
)

const namespace = "meeting_insights"

// Recorder receives one observation per model call
type Recorder interface {
	ObserveFlow(flow string, elapsed time.Duration, err error)
}

// Metrics holds the prometheus collectors for flows and whole requests
type Metrics struct {
	flowCalls    *prometheus.CounterVec
	flowLatency  *prometheus.HistogramVec
	requests     *prometheus.CounterVec
	emailsSent   *prometheus.CounterVec
	exportsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		flowCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_calls_total",
			Help:      "Model calls by flow and outcome.",
		}, []string{"flow", "outcome"}),
		flowLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flow_duration_seconds",
			Help:      "Latency of model calls by flow.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		}, []string{"flow"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Extraction requests by result kind.",
		}, []string{"kind"}),
		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_total",
			Help:      "Email deliveries by result kind.",
		}, []string{"kind"}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Exports by format.",
		}, []string{"format"}),
	}
	reg.MustRegister(m.flowCalls, m.flowLatency, m.requests, m.emailsSent, m.exportsTotal)
	return m
}

// ObserveFlow implements Recorder
func (m *Metrics) ObserveFlow(flow string, elapsed time.Duration, err error) {
	m.flowCalls.WithLabelValues(flow, outcome(err)).Inc()
	m.flowLatency.WithLabelValues(flow).Observe(elapsed.Seconds())
}

// ObserveExtraction counts a finished extraction request
func (m *Metrics) ObserveExtraction(err error) {
	m.requests.WithLabelValues(kindLabel(err)).Inc()
}

// ObserveEmail counts an email attempt
func (m *Metrics) ObserveEmail(err error) {
	m.emailsSent.WithLabelValues(kindLabel(err)).Inc()
}

// ObserveExport counts a produced export file
func (m *Metrics) ObserveExport(format string) {
	m.exportsTotal.WithLabelValues(format).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func kindLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindUnknown {
		return string(kind)
	}
	return "unknown"
}

// Nop discards observations
type Nop struct{}

func (Nop) ObserveFlow(string, time.Duration, error) {}
