package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// AddressAssetBalances recomputes per-asset balances for the given addresses
// from transfer rows up to maxHeight. Mints carry an empty sender, so only
// the receiving side of a mint contributes.
func (r *Repository) AddressAssetBalances(ctx context.Context, addresses []string, maxHeight uint64) (map[string]map[string]uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_asset_balances", err, start)
	}()

	result := make(map[string]map[string]uint64, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	const query = `
WITH latest AS (
	SELECT
		asset_id,
		block_height,
		txid,
		vout,
		argMax(from_address, updated_at) AS from_address,
		argMax(to_address, updated_at) AS to_address,
		argMax(amount, updated_at) AS amount
	FROM asset_transfers
	WHERE network = ? AND block_height <= ? AND (from_address IN ? OR to_address IN ?)
	GROUP BY asset_id, block_height, txid, vout
)
SELECT address, asset_id, sum(delta) AS balance
FROM (
	SELECT to_address AS address, asset_id, toInt64(amount) AS delta
	FROM latest
	UNION ALL
	SELECT from_address AS address, asset_id, -toInt64(amount) AS delta
	FROM latest
	WHERE from_address != ''
)
WHERE address IN ?
GROUP BY address, asset_id
HAVING balance > 0`

	rows, err := r.conn.Query(ctx, query,
		r.network, maxHeight, addresses, addresses, addresses,
	)
	if err != nil {
		return nil, fmt.Errorf("query address asset balances: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			address string
			assetID string
			balance int64
		)
		if err = rows.Scan(&address, &assetID, &balance); err != nil {
			return nil, fmt.Errorf("scan address asset balance: %w", err)
		}
		if result[address] == nil {
			result[address] = make(map[string]uint64)
		}
		result[address][assetID] = uint64(balance)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address asset balances: %w", err)
	}

	return result, nil
}
