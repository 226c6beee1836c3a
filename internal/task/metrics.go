package task

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the run-level instrumentation: extraction calls and settled
// items by outcome, plus an in-flight call gauge bounded by the limiter
// capacity.
type Metrics struct {
	// Calls counts individual extraction calls, labelled success or error.
	Calls *prometheus.CounterVec

	// Items counts settled items, labelled success or exhausted.
	Items *prometheus.CounterVec

	// InFlight tracks extraction calls currently holding a permit.
	InFlight prometheus.Gauge
}

// NewMetrics creates the run metrics and registers them on reg when it is
// non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdparse_extractor_calls_total",
				Help: "Total number of extraction service calls",
			},
			[]string{"outcome"},
		),
		Items: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdparse_items_settled_total",
				Help: "Total number of items that reached a terminal outcome",
			},
			[]string{"outcome"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cmdparse_extractor_calls_in_flight",
				Help: "Extraction calls currently in flight",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Calls, m.Items, m.InFlight)
	}
	return m
}

func (m *Metrics) observeCall(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Calls.WithLabelValues("error").Inc()
	} else {
		m.Calls.WithLabelValues("success").Inc()
	}
}

func (m *Metrics) observeItem(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Items.WithLabelValues("exhausted").Inc()
	} else {
		m.Items.WithLabelValues("success").Inc()
	}
}

func (m *Metrics) callStarted() {
	if m != nil {
		m.InFlight.Inc()
	}
}

func (m *Metrics) callFinished() {
	if m != nil {
		m.InFlight.Dec()
	}
}
