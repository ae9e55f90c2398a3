package monitoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector owns a per-service Prometheus registry so the planner,
// the social service and tests never collide on the default registry.
type MetricsCollector struct {
	prefix   string
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetricsCollector registers the HTTP metrics, a build_info gauge and the
// Go runtime collectors. Dashes in serviceName become underscores.
func NewMetricsCollector(serviceName, version, commit string) *MetricsCollector {
	mc := &MetricsCollector{
		prefix:   strings.ReplaceAll(serviceName, "-", "_"),
		registry: prometheus.NewRegistry(),
	}

	mc.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: mc.name("http_requests_total"),
		Help: "HTTP requests by method, route and status class",
	}, []string{"method", "route", "status"})

	mc.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    mc.name("http_request_duration_seconds"),
		Help:    "HTTP request latency by route",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route"})

	mc.inFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: mc.name("http_in_flight_requests"),
		Help: "HTTP requests currently being served",
	})

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: mc.name("build_info"),
		Help: "Build version and commit of the running binary",
	}, []string{"version", "commit"})
	buildInfo.WithLabelValues(version, commit).Set(1)

	mc.registry.MustRegister(
		mc.requests,
		mc.latency,
		mc.inFlight,
		buildInfo,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return mc
}

func (mc *MetricsCollector) name(metric string) string {
	return mc.prefix + "_" + metric
}

// Registry exposes the underlying registry, mainly for tests.
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}

// StatusClass buckets an HTTP status into 2xx, 3xx, 4xx or 5xx.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}

// MetricsMiddleware records every request against its matched route
// template. Unmatched paths share the "unmatched" route label.
func (mc *MetricsCollector) MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		mc.inFlight.Inc()
		defer mc.inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		mc.requests.WithLabelValues(method, route, StatusClass(c.Writer.Status())).Inc()
		mc.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (mc *MetricsCollector) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{}))
}

// NewCounter registers a service-prefixed counter.
func (mc *MetricsCollector) NewCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: mc.name(name), Help: help}, labels)
	mc.registry.MustRegister(counter)
	return counter
}

// NewGauge registers a service-prefixed gauge.
func (mc *MetricsCollector) NewGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: mc.name(name), Help: help}, labels)
	mc.registry.MustRegister(gauge)
	return gauge
}
