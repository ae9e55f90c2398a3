package handlers

import "github.com/prometheus/client_golang/prometheus"

type SocialMetrics struct {
	Requests *prometheus.CounterVec
}

func (m *SocialMetrics) Inc(platform, outcome string) {
	if m == nil || m.Requests == nil {
		return
	}

	m.Requests.WithLabelValues(platform, outcome).Inc()
}
