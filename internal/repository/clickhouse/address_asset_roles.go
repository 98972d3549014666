package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AddressAssetRoles counts, per address, the assets it created and the assets
// it currently owns, from the latest asset versions.
func (r *Repository) AddressAssetRoles(ctx context.Context, addresses []string) (map[string]model.AddressAssetRoles, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_asset_roles", err, start)
	}()

	result := make(map[string]model.AddressAssetRoles, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	const query = `
WITH latest AS (
	SELECT
		asset_id,
		argMax(creator, updated_at) AS creator,
		argMax(current_owner, updated_at) AS current_owner
	FROM assets
	WHERE network = ?
	GROUP BY asset_id
)
SELECT address, sum(created) AS assets_created, sum(owned) AS assets_owned
FROM (
	SELECT creator AS address, toUInt64(1) AS created, toUInt64(0) AS owned
	FROM latest
	WHERE creator IN ?
	UNION ALL
	SELECT current_owner AS address, toUInt64(0) AS created, toUInt64(1) AS owned
	FROM latest
	WHERE current_owner IN ?
)
GROUP BY address`

	rows, err := r.conn.Query(ctx, query, r.network, addresses, addresses)
	if err != nil {
		return nil, fmt.Errorf("query address asset roles: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			address string
			roles   model.AddressAssetRoles
		)
		if err = rows.Scan(&address, &roles.Created, &roles.Owned); err != nil {
			return nil, fmt.Errorf("scan address asset roles: %w", err)
		}
		result[address] = roles
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address asset roles: %w", err)
	}

	return result, nil
}
