package paynode

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "subscast_paynode"

// Metrics holds Prometheus metrics of the payment node.
type Metrics struct {
	PaymentsTotal *prometheus.CounterVec
	Due           prometheus.Gauge
	RoundDuration prometheus.Histogram
	RoundsTotal   *prometheus.CounterVec
}

// NewMetrics creates metrics and registers them in the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PaymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "payments_total",
				Help:      "Total number of processed due subscriptions by outcome",
			},
			[]string{"result"},
		),
		Due: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "due_subscriptions",
				Help:      "Number of due subscriptions found in the last round",
			},
		),
		RoundDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "round_duration_seconds",
				Help:      "Payment round duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		RoundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "rounds_total",
				Help:      "Total number of payment rounds by status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.PaymentsTotal, m.Due, m.RoundDuration, m.RoundsTotal)

	return m
}

func (m *Metrics) observeRound(r Report, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}

	m.RoundsTotal.WithLabelValues(status).Inc()
	m.RoundDuration.Observe(seconds)
	m.Due.Set(float64(r.Due))
}

func (m *Metrics) observePayment(o outcome) {
	m.PaymentsTotal.WithLabelValues(o.String()).Inc()
}
