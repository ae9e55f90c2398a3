package clients

import (
	"stratagix/pkg/monitoring"
)

// BreakerMetrics registers circuit breaker gauges on mc and returns a
// callback for ExecutorConfig.OnStateChange.
func BreakerMetrics(mc *monitoring.MetricsCollector) func(name string, from, to BreakerState) {
	state := mc.NewGauge("circuit_breaker_state",
		"Current state of circuit breaker (0=closed, 1=half-open, 2=open)", []string{"name"})
	transitions := mc.NewCounter("circuit_breaker_state_transitions_total",
		"Total number of circuit breaker state transitions", []string{"name", "from", "to"})
	return func(name string, from, to BreakerState) {
		transitions.WithLabelValues(name, from.String(), to.String()).Inc()
		state.WithLabelValues(name).Set(float64(to))
	}
}
