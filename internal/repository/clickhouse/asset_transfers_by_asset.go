package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AssetTransfersByAsset returns a page of an asset's transfer history, newest
// first.
func (r *Repository) AssetTransfersByAsset(ctx context.Context, assetID string, limit, offset uint64) ([]model.AssetTransfer, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("asset_transfers_by_asset", err, start)
	}()

	if limit == 0 {
		return nil, nil
	}

	const query = `
SELECT
	asset_id,
	txid,
	vout,
	block_height,
	argMax(from_address, updated_at) AS from_address,
	argMax(to_address, updated_at) AS to_address,
	argMax(amount, updated_at) AS amount,
	argMax(kind, updated_at) AS kind,
	argMax(tx_index, updated_at) AS tx_index,
	argMax(timestamp, updated_at) AS timestamp
FROM asset_transfers
WHERE network = ? AND asset_id = ?
GROUP BY asset_id, block_height, txid, vout
ORDER BY block_height DESC, tx_index DESC, vout DESC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, r.network, assetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query asset transfers: %w", err)
	}
	defer closeRows(rows, &err)

	var transfers []model.AssetTransfer
	for rows.Next() {
		var (
			transfer = model.AssetTransfer{Network: r.network}
			kind     string
		)
		if err = rows.Scan(
			&transfer.AssetID,
			&transfer.TxID,
			&transfer.Vout,
			&transfer.BlockHeight,
			&transfer.From,
			&transfer.To,
			&transfer.Amount,
			&kind,
			&transfer.TxIndex,
			&transfer.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan asset transfer: %w", err)
		}
		transfer.Kind = model.TransferKind(kind)
		transfers = append(transfers, transfer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset transfers: %w", err)
	}

	return transfers, nil
}
