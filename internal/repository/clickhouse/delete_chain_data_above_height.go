package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// DeleteChainDataAboveHeight removes every row recorded above the given
// height. Blocks go last so an interrupted rollback can rediscover the same
// ancestor and run again.
func (r *Repository) DeleteChainDataAboveHeight(ctx context.Context, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_chain_data_above_height", err, start)
	}()

	statements := []struct {
		name  string
		query string
	}{
		{"asset_transfers", `DELETE FROM asset_transfers WHERE network = ? AND block_height > ?`},
		{"future_outputs", `DELETE FROM future_outputs WHERE network = ? AND created_height > ?`},
		{"transaction_inputs", `DELETE FROM transaction_inputs WHERE network = ? AND block_height > ?`},
		{"transaction_outputs", `DELETE FROM transaction_outputs WHERE network = ? AND block_height > ?`},
		{"transactions", `DELETE FROM transactions WHERE network = ? AND block_height > ?`},
		{"assets", `DELETE FROM assets WHERE network = ? AND created_height > ?`},
		{"addresses", `DELETE FROM addresses WHERE network = ? AND first_seen_block > ?`},
		{"blocks", `DELETE FROM blocks WHERE network = ? AND height > ?`},
	}

	for _, stmt := range statements {
		if err = r.conn.Exec(ctx, stmt.query, r.network, height); err != nil {
			return fmt.Errorf("delete %s above height: %w", stmt.name, err)
		}
	}
	return nil
}
