package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// InsertAssetTransfers stores transfer events. Rows are keyed by
// (network, asset_id, block_height, txid, vout) so replaying a block after a
// partial failure collapses into the previous rows instead of duplicating
// them.
func (r *Repository) InsertAssetTransfers(ctx context.Context, transfers []model.AssetTransfer) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_asset_transfers", err, start)
	}()

	if len(transfers) == 0 {
		return nil
	}

	const query = `
INSERT INTO asset_transfers (
	network,
	asset_id,
	txid,
	vout,
	from_address,
	to_address,
	amount,
	kind,
	block_height,
	tx_index,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare asset transfers batch: %w", err)
	}

	for _, transfer := range transfers {
		if err = batch.Append(
			string(transfer.Network),
			transfer.AssetID,
			transfer.TxID,
			transfer.Vout,
			transfer.From,
			transfer.To,
			transfer.Amount,
			string(transfer.Kind),
			transfer.BlockHeight,
			transfer.TxIndex,
			transfer.Timestamp,
		); err != nil {
			return fmt.Errorf("append asset transfer: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert asset transfers: %w", err)
	}
	return nil
}
