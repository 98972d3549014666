package metrics

import (
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	futureStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "future_tracker",
		Name:      "steps_total",
		Help:      "Count of replay steps run by the future tracker.",
	}, []string{"network", "status"})
	futureStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "future_tracker",
		Name:      "step_duration_seconds",
		Help:      "Duration of one future replay step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	futureTimePassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "future_tracker",
		Name:      "time_passes_total",
		Help:      "Count of periodic time unlock evaluations.",
	}, []string{"network", "status"})
	futureTimePassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "future_tracker",
		Name:      "time_pass_duration_seconds",
		Help:      "Duration of one periodic time unlock evaluation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	futureTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "future_tracker",
		Name:      "transitions_total",
		Help:      "Count of future output state transitions.",
	}, []string{"network", "transition"})
)

// FutureTracker tracks metrics for locked output lifecycle handling.
type FutureTracker struct {
	network model.Network
}

// NewFutureTracker constructs a FutureTracker metrics collector.
func NewFutureTracker(network model.Network) *FutureTracker {
	if network == "" {
		network = "unknown"
	}
	return &FutureTracker{network: network}
}

// ObserveStep records the outcome of one replay step.
func (m FutureTracker) ObserveStep(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	futureStepsTotal.WithLabelValues(string(m.network), status).Inc()
	futureStepDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveTimePass records the outcome of one periodic time unlock evaluation.
func (m FutureTracker) ObserveTimePass(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	futureTimePassTotal.WithLabelValues(string(m.network), status).Inc()
	futureTimePassDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveTransitions records state transitions applied to future outputs.
func (m FutureTracker) ObserveTransitions(transition string, count int) {
	if count == 0 {
		return
	}
	futureTransitionsTotal.WithLabelValues(string(m.network), transition).Add(float64(count))
}
