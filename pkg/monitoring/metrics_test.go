package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mc := NewMetricsCollector("planner-api", "v1", "abc")

	r := gin.New()
	r.Use(mc.MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", mc.Handler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	got := testutil.ToFloat64(mc.requests.WithLabelValues("GET", "/ping", "2xx"))
	if got != 2 {
		t.Fatalf("expected 2 requests counted, got %v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "planner_api_http_requests_total") {
		t.Fatalf("expected sanitized metric name in exposition")
	}
}

func TestCollectorsUseIndependentRegistries(t *testing.T) {
	a := NewMetricsCollector("svc", "v1", "abc")
	b := NewMetricsCollector("svc", "v1", "abc")

	a.NewCounter("things_total", "things", []string{"kind"}).WithLabelValues("x").Inc()
	counter := b.NewCounter("things_total", "things", []string{"kind"})
	if got := testutil.ToFloat64(counter.WithLabelValues("x")); got != 0 {
		t.Fatalf("expected independent counters, got %v", got)
	}
}

func TestUnmatchedRoutesShareALabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mc := NewMetricsCollector("svc", "v1", "abc")

	r := gin.New()
	r.Use(mc.MetricsMiddleware())
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/2", nil))

	if got := testutil.ToFloat64(mc.requests.WithLabelValues("GET", "unmatched", "4xx")); got != 2 {
		t.Fatalf("expected 2 unmatched requests, got %v", got)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[int]string{200: "2xx", 204: "2xx", 301: "3xx", 404: "4xx", 503: "5xx", 0: "unknown", 700: "unknown"}
	for status, want := range cases {
		if got := StatusClass(status); got != want {
			t.Fatalf("StatusClass(%d) = %q, want %q", status, got, want)
		}
	}
}
