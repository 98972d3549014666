// Package clickhouse stores and reads every materialized record produced by
// the sync services. All mutable tables are ReplacingMergeTree keyed by their
// natural id; writes append a new version and reads resolve the latest one
// with argMax, so an upsert is a plain insert and replaying a block is
// harmless.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

//go:generate mockgen -destination=mocks_test.go -package=clickhouse github.com/ClickHouse/clickhouse-go/v2/lib/driver Conn,Batch,Rows
//go:generate mockgen -source=$GOFILE -destination=metrics_mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    clickhouse.Conn
	network model.Network
	metrics Metrics
}

// NewRepository opens a ClickHouse connection for one network's records.
func NewRepository(dsn string, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, network: network, metrics: metrics}, nil
}

// Ping verifies the connection is usable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// Close shuts the underlying connection down.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func closeRows(rows interface{ Close() error }, err *error) {
	if closeErr := rows.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close rows: %w", closeErr)
	}
}

// DateTime columns cannot hold Go's zero time, so unset timestamps are stored
// as the epoch and folded back to the zero value on read.

func epochWhenZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return t
}

func zeroWhenEpoch(t time.Time) time.Time {
	if t.Unix() == 0 {
		return time.Time{}
	}
	return t
}
