package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// InsertTransactions stores transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
	network,
	txid,
	block_height,
	block_hash,
	tx_index,
	timestamp,
	type,
	input_count,
	output_count,
	asset_payload,
	future_payload
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.TxID,
			tx.BlockHeight,
			tx.BlockHash,
			tx.TxIndex,
			tx.Timestamp,
			string(tx.Type),
			tx.InputCount,
			tx.OutputCount,
			tx.AssetPayload,
			tx.FuturePayload,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
