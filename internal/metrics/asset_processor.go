package metrics

import (
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assetStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "asset_processor",
		Name:      "steps_total",
		Help:      "Count of replay steps run by the asset processor.",
	}, []string{"network", "status"})
	assetStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "assetsight",
		Subsystem: "asset_processor",
		Name:      "step_duration_seconds",
		Help:      "Duration of one asset replay step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	assetTransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "asset_processor",
		Name:      "transfers_total",
		Help:      "Count of asset transfer events recorded.",
	}, []string{"network", "kind"})
	assetConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assetsight",
		Subsystem: "asset_processor",
		Name:      "conflicts_total",
		Help:      "Count of asset operations rejected by a consistency guard.",
	}, []string{"network", "reason"})
)

// AssetProcessor tracks metrics for asset materialization.
type AssetProcessor struct {
	network model.Network
}

// NewAssetProcessor constructs an AssetProcessor metrics collector.
func NewAssetProcessor(network model.Network) *AssetProcessor {
	if network == "" {
		network = "unknown"
	}
	return &AssetProcessor{network: network}
}

// ObserveStep records the outcome of one replay step.
func (m AssetProcessor) ObserveStep(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	assetStepsTotal.WithLabelValues(string(m.network), status).Inc()
	assetStepDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveTransfers records transfer events applied for one block.
func (m AssetProcessor) ObserveTransfers(kind model.TransferKind, count int) {
	if count == 0 {
		return
	}
	assetTransfersTotal.WithLabelValues(string(m.network), string(kind)).Add(float64(count))
}

// ObserveConflict records a rejected asset operation.
func (m AssetProcessor) ObserveConflict(reason string) {
	assetConflictsTotal.WithLabelValues(string(m.network), reason).Inc()
}
