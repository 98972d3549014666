package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

const latestFutureColumns = `
	txid,
	vout,
	argMax(address, updated_at) AS address,
	argMax(amount, updated_at) AS amount,
	argMax(asset_id, updated_at) AS asset_id,
	argMax(created_height, updated_at) AS created_height,
	argMax(created_at, updated_at) AS created_at,
	argMax(maturity, updated_at) AS maturity,
	argMax(lock_time, updated_at) AS lock_time,
	argMax(unlock_height, updated_at) AS unlock_height,
	argMax(unlock_time, updated_at) AS unlock_time,
	argMax(status, updated_at) AS status,
	argMax(unlocked_by, updated_at) AS unlocked_by,
	argMax(unlocked_height, updated_at) AS unlocked_height,
	argMax(unlocked_at, updated_at) AS unlocked_at,
	argMax(spent_txid, updated_at) AS spent_txid,
	argMax(spent_height, updated_at) AS spent_height,
	argMax(spent_at, updated_at) AS spent_at`

func (r *Repository) scanFutureOutput(rows driver.Rows) (model.FutureOutput, error) {
	var (
		future     = model.FutureOutput{Network: r.network}
		status     string
		unlockedBy string
	)
	if err := rows.Scan(
		&future.TxID,
		&future.Vout,
		&future.Recipient,
		&future.Amount,
		&future.AssetID,
		&future.CreatedHeight,
		&future.CreatedAt,
		&future.Maturity,
		&future.LockTime,
		&future.UnlockHeight,
		&future.UnlockTime,
		&status,
		&unlockedBy,
		&future.UnlockedHeight,
		&future.UnlockedAt,
		&future.SpentTxID,
		&future.SpentHeight,
		&future.SpentAt,
	); err != nil {
		return model.FutureOutput{}, err
	}
	future.Status = model.FutureStatus(status)
	future.UnlockedBy = model.UnlockTrigger(unlockedBy)
	future.UnlockTime = zeroWhenEpoch(future.UnlockTime)
	future.UnlockedAt = zeroWhenEpoch(future.UnlockedAt)
	future.SpentAt = zeroWhenEpoch(future.SpentAt)
	return future, nil
}

// ListFutureOutputs returns a page of future outputs matching the filter,
// newest first.
func (r *Repository) ListFutureOutputs(ctx context.Context, filter model.FutureFilter) ([]model.FutureOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_future_outputs", err, start)
	}()

	if filter.Limit == 0 {
		return nil, nil
	}

	const query = `
SELECT` + latestFutureColumns + `
FROM future_outputs
WHERE network = ?
GROUP BY txid, vout
HAVING (? = '' OR status = ?)
	AND (? = '' OR address = ?)
	AND (? = '' OR asset_id = ?)
ORDER BY created_height DESC, txid ASC, vout ASC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query,
		r.network,
		string(filter.Status), string(filter.Status),
		filter.Address, filter.Address,
		filter.AssetID, filter.AssetID,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query future outputs: %w", err)
	}
	defer closeRows(rows, &err)

	var futures []model.FutureOutput
	for rows.Next() {
		future, scanErr := r.scanFutureOutput(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan future output: %w", err)
		}
		futures = append(futures, future)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate future outputs: %w", err)
	}

	return futures, nil
}
