package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// UpsertAddresses writes address rows, superseding earlier versions of the
// same (network, address) key.
func (r *Repository) UpsertAddresses(ctx context.Context, addresses []model.Address) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_addresses", err, start)
	}()

	if len(addresses) == 0 {
		return nil
	}

	const query = `
INSERT INTO addresses (
	network,
	address,
	balance,
	total_received,
	total_sent,
	tx_count,
	asset_balances,
	assets_created,
	assets_owned,
	is_creator,
	is_contract,
	first_seen_block,
	first_seen_at,
	last_seen_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare addresses batch: %w", err)
	}

	for _, addr := range addresses {
		balances := addr.AssetBalances
		if balances == nil {
			balances = map[string]uint64{}
		}
		if err = batch.Append(
			string(addr.Network),
			addr.Address,
			addr.Balance,
			addr.TotalReceived,
			addr.TotalSent,
			addr.TxCount,
			balances,
			addr.AssetsCreated,
			addr.AssetsOwned,
			addr.IsCreator,
			addr.IsContract,
			addr.FirstSeenBlock,
			addr.FirstSeenAt,
			addr.LastSeenAt,
		); err != nil {
			return fmt.Errorf("append address: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert addresses: %w", err)
	}
	return nil
}
