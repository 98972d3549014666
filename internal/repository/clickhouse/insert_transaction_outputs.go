package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// InsertTransactionOutputs stores output rows.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transaction_outputs (
	network,
	txid,
	output_index,
	address,
	value,
	block_height,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, out := range outputs {
		if err = batch.Append(
			string(out.Network),
			out.TxID,
			out.Index,
			out.Address,
			out.Value,
			out.BlockHeight,
			out.Timestamp,
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
