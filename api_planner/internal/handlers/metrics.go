package handlers

import "github.com/prometheus/client_golang/prometheus"

type PlannerMetrics struct {
	Queries *prometheus.CounterVec
}

func (m *PlannerMetrics) Inc(endpoint, outcome string) {
	if m == nil || m.Queries == nil {
		return
	}

	m.Queries.WithLabelValues(endpoint, outcome).Inc()
}
