package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes the HTTP-level series. Solve counters and durations are
// recorded by the service package and served from the same registry.
type Metrics struct {
	handler http.Handler
}

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polyroots_http_active_requests",
		Help: "Requests currently being served.",
	})
	totalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polyroots_http_requests_total",
		Help: "HTTP requests by path and status code.",
	}, []string{"path", "code"})
)

// NewMetrics creates a Metrics backed by the default Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// handleMetrics serves the Prometheus text exposition.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.metrics.handler.ServeHTTP(w, r)
}

// metricsMiddleware tracks in-flight requests and counts completed ones by
// status code.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeRequests.Inc()
		defer activeRequests.Dec()

		rec := recordStatus(w)
		next(rec, r)
		totalRequests.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
	}
}
