package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// AddressesTouchedAbove returns every address appearing in inputs, outputs or
// transfer rows above the given height.
func (r *Repository) AddressesTouchedAbove(ctx context.Context, height uint64) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("addresses_touched_above", err, start)
	}()

	const query = `
SELECT DISTINCT address
FROM (
	SELECT address FROM transaction_inputs WHERE network = ? AND block_height > ?
	UNION ALL
	SELECT address FROM transaction_outputs WHERE network = ? AND block_height > ?
	UNION ALL
	SELECT from_address AS address FROM asset_transfers WHERE network = ? AND block_height > ?
	UNION ALL
	SELECT to_address AS address FROM asset_transfers WHERE network = ? AND block_height > ?
)
WHERE address != ''`

	rows, err := r.conn.Query(ctx, query,
		r.network, height,
		r.network, height,
		r.network, height,
		r.network, height,
	)
	if err != nil {
		return nil, fmt.Errorf("query addresses touched above height: %w", err)
	}
	defer closeRows(rows, &err)

	var addresses []string
	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return addresses, nil
}
