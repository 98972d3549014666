package metrics

import (
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "steps_total",
		Help:      "Count of coordinator sync steps.",
	}, []string{"service", "network", "status"})
	coordinatorStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "step_duration_seconds",
		Help:      "Duration of one coordinator sync step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "network", "status"})
	coordinatorStepBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "step_blocks",
		Help:      "Number of blocks committed per sync step.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"service", "network"})
	coordinatorCurrentBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "current_block",
		Help:      "Last committed block height per service.",
	}, []string{"service", "network"})
	coordinatorTargetBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "target_block",
		Help:      "Current sync target height per service.",
	}, []string{"service", "network"})
	coordinatorReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "reorgs_total",
		Help:      "Count of resolved chain reorganizations.",
	}, []string{"network", "status"})
	coordinatorReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "sync_coordinator",
		Name:      "reorg_depth",
		Help:      "Blocks rolled back per resolved reorganization.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"network"})
)

// Coordinator tracks metrics for one sync service loop.
type Coordinator struct {
	service model.SyncService
	network model.Network
}

// NewCoordinator constructs a Coordinator metrics collector.
func NewCoordinator(service model.SyncService, network model.Network) *Coordinator {
	if service == "" {
		service = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Coordinator{service: service, network: network}
}

// ObserveStep records the outcome of one sync step and how many blocks it committed.
func (m Coordinator) ObserveStep(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	coordinatorStepsTotal.WithLabelValues(string(m.service), string(m.network), status).Inc()
	coordinatorStepDuration.WithLabelValues(string(m.service), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if blocks > 0 {
		coordinatorStepBlocks.WithLabelValues(string(m.service), string(m.network)).
			Observe(float64(blocks))
	}
}

// SetProgress publishes the committed and target heights.
func (m Coordinator) SetProgress(current, target uint64) {
	coordinatorCurrentBlock.WithLabelValues(string(m.service), string(m.network)).Set(float64(current))
	coordinatorTargetBlock.WithLabelValues(string(m.service), string(m.network)).Set(float64(target))
}

// ObserveReorg records a reorganization resolution attempt and its depth.
func (m Coordinator) ObserveReorg(err error, depth uint64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	coordinatorReorgsTotal.WithLabelValues(string(m.network), status).Inc()
	if err == nil {
		coordinatorReorgDepth.WithLabelValues(string(m.network)).Observe(float64(depth))
	}
}
