package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// InsertTransactionInputs stores input rows.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_inputs", err, start)
	}()

	if len(inputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transaction_inputs (
	network,
	txid,
	input_index,
	prev_txid,
	prev_vout,
	address,
	value,
	is_coinbase,
	block_height,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction inputs batch: %w", err)
	}

	for _, in := range inputs {
		if err = batch.Append(
			string(in.Network),
			in.TxID,
			in.Index,
			in.PrevTxID,
			in.PrevVout,
			in.Address,
			in.Value,
			in.IsCoinbase,
			in.BlockHeight,
			in.Timestamp,
		); err != nil {
			return fmt.Errorf("append transaction input: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	return nil
}
