package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AddressesByIDs returns the latest version of each requested address, keyed
// by address. Unknown addresses are absent from the result.
func (r *Repository) AddressesByIDs(ctx context.Context, addresses []string) (map[string]model.Address, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("addresses_by_ids", err, start)
	}()

	result := make(map[string]model.Address, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	const query = `
SELECT` + latestAddressColumns + `
FROM addresses
WHERE network = ? AND address IN ?
GROUP BY address`

	rows, err := r.conn.Query(ctx, query, r.network, addresses)
	if err != nil {
		return nil, fmt.Errorf("query addresses by ids: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		addr, scanErr := r.scanAddress(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan address: %w", err)
		}
		result[addr.Address] = addr
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return result, nil
}
