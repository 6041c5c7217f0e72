package handlers

import "github.com/prometheus/client_golang/prometheus"

// EventsCounter returns the counter of accepted events.
func (h *Receive) EventsCounter() *prometheus.CounterVec {
	return h.events
}
