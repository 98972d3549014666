package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// AddressChainAggregates recomputes coin totals, transaction counts and
// first/last activity for the given addresses from input and output rows up
// to maxHeight.
func (r *Repository) AddressChainAggregates(ctx context.Context, addresses []string, maxHeight uint64) (map[string]model.AddressChainAggregate, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_chain_aggregates", err, start)
	}()

	result := make(map[string]model.AddressChainAggregate, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	const query = `
WITH activity AS (
	SELECT
		address,
		txid,
		block_height,
		timestamp,
		toUInt64(0) AS received,
		value AS sent
	FROM (
		SELECT
			txid,
			input_index,
			block_height,
			argMax(address, updated_at) AS address,
			argMax(value, updated_at) AS value,
			argMax(timestamp, updated_at) AS timestamp
		FROM transaction_inputs
		WHERE network = ? AND address IN ? AND block_height <= ?
		GROUP BY block_height, txid, input_index
	)
	UNION ALL
	SELECT
		address,
		txid,
		block_height,
		timestamp,
		value AS received,
		toUInt64(0) AS sent
	FROM (
		SELECT
			txid,
			output_index,
			block_height,
			argMax(address, updated_at) AS address,
			argMax(value, updated_at) AS value,
			argMax(timestamp, updated_at) AS timestamp
		FROM transaction_outputs
		WHERE network = ? AND address IN ? AND block_height <= ?
		GROUP BY block_height, txid, output_index
	)
)
SELECT
	address,
	sum(received) AS total_received,
	sum(sent) AS total_sent,
	uniqExact(txid) AS tx_count,
	min(block_height) AS first_seen_block,
	min(timestamp) AS first_seen_at,
	max(timestamp) AS last_seen_at
FROM activity
WHERE address != ''
GROUP BY address`

	rows, err := r.conn.Query(ctx, query,
		r.network, addresses, maxHeight,
		r.network, addresses, maxHeight,
	)
	if err != nil {
		return nil, fmt.Errorf("query address chain aggregates: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var (
			address   string
			aggregate model.AddressChainAggregate
		)
		if err = rows.Scan(
			&address,
			&aggregate.Received,
			&aggregate.Sent,
			&aggregate.TxCount,
			&aggregate.FirstSeenBlock,
			&aggregate.FirstSeenAt,
			&aggregate.LastSeenAt,
		); err != nil {
			return nil, fmt.Errorf("scan address chain aggregate: %w", err)
		}
		result[address] = aggregate
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address chain aggregates: %w", err)
	}

	return result, nil
}
