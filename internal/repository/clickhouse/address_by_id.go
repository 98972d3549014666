package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const latestAddressColumns = `
	address,
	argMax(balance, updated_at) AS balance,
	argMax(total_received, updated_at) AS total_received,
	argMax(total_sent, updated_at) AS total_sent,
	argMax(tx_count, updated_at) AS tx_count,
	argMax(asset_balances, updated_at) AS asset_balances,
	argMax(assets_created, updated_at) AS assets_created,
	argMax(assets_owned, updated_at) AS assets_owned,
	argMax(is_creator, updated_at) AS is_creator,
	argMax(is_contract, updated_at) AS is_contract,
	argMax(first_seen_block, updated_at) AS first_seen_block,
	argMax(first_seen_at, updated_at) AS first_seen_at,
	argMax(last_seen_at, updated_at) AS last_seen_at`

func (r *Repository) scanAddress(rows driver.Rows) (model.Address, error) {
	addr := model.Address{Network: r.network}
	if err := rows.Scan(
		&addr.Address,
		&addr.Balance,
		&addr.TotalReceived,
		&addr.TotalSent,
		&addr.TxCount,
		&addr.AssetBalances,
		&addr.AssetsCreated,
		&addr.AssetsOwned,
		&addr.IsCreator,
		&addr.IsContract,
		&addr.FirstSeenBlock,
		&addr.FirstSeenAt,
		&addr.LastSeenAt,
	); err != nil {
		return model.Address{}, err
	}
	return addr, nil
}

// AddressByID returns one address in its latest version, or nil when the
// address never appeared on chain.
func (r *Repository) AddressByID(ctx context.Context, address string) (*model.Address, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_by_id", err, start)
	}()

	const query = `
SELECT` + latestAddressColumns + `
FROM addresses
WHERE network = ? AND address = ?
GROUP BY address`

	rows, err := r.conn.Query(ctx, query, r.network, address)
	if err != nil {
		return nil, fmt.Errorf("query address by id: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return nil, nil
	}

	addr, err := r.scanAddress(rows)
	if err != nil {
		return nil, fmt.Errorf("scan address: %w", err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address: %w", err)
	}

	return &addr, nil
}
