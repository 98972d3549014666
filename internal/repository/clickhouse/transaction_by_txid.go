package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// TransactionByTxID returns one stored transaction, or nil when unknown.
func (r *Repository) TransactionByTxID(ctx context.Context, txid string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_txid", err, start)
	}()

	const query = `
SELECT
	txid,
	block_height,
	argMax(block_hash, updated_at) AS block_hash,
	argMax(tx_index, updated_at) AS tx_index,
	argMax(timestamp, updated_at) AS timestamp,
	argMax(type, updated_at) AS type,
	argMax(input_count, updated_at) AS input_count,
	argMax(output_count, updated_at) AS output_count,
	argMax(asset_payload, updated_at) AS asset_payload,
	argMax(future_payload, updated_at) AS future_payload
FROM transactions
WHERE network = ? AND txid = ?
GROUP BY block_height, txid
ORDER BY block_height DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, r.network, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction by txid: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return nil, nil
	}

	var (
		tx     = model.Transaction{Network: r.network}
		txType string
	)
	if err = rows.Scan(
		&tx.TxID,
		&tx.BlockHeight,
		&tx.BlockHash,
		&tx.TxIndex,
		&tx.Timestamp,
		&txType,
		&tx.InputCount,
		&tx.OutputCount,
		&tx.AssetPayload,
		&tx.FuturePayload,
	); err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction: %w", err)
	}

	tx.Type = chain.TxType(txType)
	return &tx, nil
}
