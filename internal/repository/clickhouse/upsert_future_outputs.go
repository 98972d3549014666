package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// UpsertFutureOutputs writes future output rows keyed by (network, txid, vout).
// Lifecycle transitions rewrite the whole row with the new status.
func (r *Repository) UpsertFutureOutputs(ctx context.Context, futures []model.FutureOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_future_outputs", err, start)
	}()

	if len(futures) == 0 {
		return nil
	}

	const query = `
INSERT INTO future_outputs (
	network,
	txid,
	vout,
	address,
	amount,
	asset_id,
	created_height,
	created_at,
	maturity,
	lock_time,
	unlock_height,
	unlock_time,
	status,
	unlocked_by,
	unlocked_height,
	unlocked_at,
	spent_txid,
	spent_height,
	spent_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare future outputs batch: %w", err)
	}

	for _, future := range futures {
		if err = batch.Append(
			string(future.Network),
			future.TxID,
			future.Vout,
			future.Recipient,
			future.Amount,
			future.AssetID,
			future.CreatedHeight,
			future.CreatedAt,
			future.Maturity,
			future.LockTime,
			future.UnlockHeight,
			epochWhenZero(future.UnlockTime),
			string(future.Status),
			string(future.UnlockedBy),
			future.UnlockedHeight,
			epochWhenZero(future.UnlockedAt),
			future.SpentTxID,
			future.SpentHeight,
			epochWhenZero(future.SpentAt),
		); err != nil {
			return fmt.Errorf("append future output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert future outputs: %w", err)
	}
	return nil
}
