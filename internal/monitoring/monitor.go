// Package monitoring collects the storefront's operational counters.
package monitoring

import "github.com/prometheus/client_golang/prometheus"

// Monitor exposes prometheus counters for the storefront. Handlers record
// into it; the metrics server on the side port scrapes the registry.
type Monitor struct {
	cartMutations      *prometheus.CounterVec
	ordersComposed     prometheus.Counter
	contactSubmissions *prometheus.CounterVec
}

// NewMonitor creates a monitor and registers its collectors.
func NewMonitor(reg prometheus.Registerer) *Monitor {
	m := &Monitor{
		cartMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "doceencanto_cart_mutations_total",
			Help: "Cart mutations by operation.",
		}, []string{"op"}),
		ordersComposed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "doceencanto_orders_composed_total",
			Help: "Orders handed off to WhatsApp.",
		}),
		contactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "doceencanto_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.cartMutations, m.ordersComposed, m.contactSubmissions)
	return m
}

// RecordCartMutation counts one cart mutation for the operation name.
func (m *Monitor) RecordCartMutation(op string) {
	m.cartMutations.WithLabelValues(op).Inc()
}

// RecordOrderComposed counts one WhatsApp handoff.
func (m *Monitor) RecordOrderComposed() {
	m.ordersComposed.Inc()
}

// RecordContactSubmission counts one contact relay attempt by outcome
// ("sent" or "failed").
func (m *Monitor) RecordContactSubmission(outcome string) {
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}
