package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of API requests.",
	}, []string{"route", "method", "network", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "network", "status"})
)

// APIServer tracks request metrics for the read API.
type APIServer struct {
	network model.Network
}

// NewAPIServer creates an APIServer metrics collector.
func NewAPIServer(network model.Network) *APIServer {
	if network == "" {
		network = "unknown"
	}
	return &APIServer{network: network}
}

// Middleware instruments every routed request, labeled with the route
// template rather than the raw path so parameterized routes share a series.
func (m *APIServer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		status := strconv.Itoa(sw.status)
		apiRequestsTotal.WithLabelValues(route, r.Method, string(m.network), status).Inc()
		apiRequestDuration.WithLabelValues(route, r.Method, string(m.network), status).
			Observe(time.Since(started).Seconds())
	})
}

// statusWriter captures the response code for the request labels.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
