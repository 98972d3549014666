package node

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/chain"
	"github.com/assetsightworks/assetsight-backend/pkg/safe"
)

// Client fetches chain data from the node, rate limiting every call so sync
// catch-up cannot starve the node's RPC thread pool.
type Client struct {
	caller  Caller
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// NewClient constructs a node client.
func NewClient(caller Caller, rps int, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if caller == nil {
		return nil, fmt.Errorf("caller is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	if rps <= 0 {
		return nil, fmt.Errorf("rps must be positive, got %d", rps)
	}
	return &Client{
		caller:  caller,
		limiter: ratelimit.New(rps),
		metrics: metrics,
		logger:  logger,
	}, nil
}

func (c *Client) take(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()
	return ctx.Err()
}

// ChainTip returns the node's best block height.
func (c *Client) ChainTip(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_count", err, started)
	}()

	if err = c.take(ctx); err != nil {
		return 0, err
	}
	count, err := c.caller.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Uint64(count)
}

// BlockHash returns the node's block hash at the given height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (hash string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_hash", err, started)
	}()

	if err = c.take(ctx); err != nil {
		return "", err
	}
	h, err := c.caller.GetBlockHash(int64(height))
	if err != nil {
		return "", fmt.Errorf("get block hash %d: %w", height, err)
	}
	return h.String(), nil
}

// BlockAtHeight fetches the fully decoded block at the given height,
// including per transaction asset and future declarations.
func (c *Client) BlockAtHeight(ctx context.Context, height uint64) (*chain.Block, error) {
	hash, err := c.BlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	return c.blockByHash(ctx, hash)
}

func (c *Client) blockByHash(ctx context.Context, hash string) (block *chain.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_verbose", err, started)
	}()

	if err = c.take(ctx); err != nil {
		return nil, err
	}
	params, err := marshalParams(hash, 2)
	if err != nil {
		return nil, err
	}
	res, err := c.caller.RawRequest("getblock", params)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	var raw rawBlock
	if err = json.Unmarshal(res, &raw); err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}
	return convertBlock(raw, c.logger)
}

// RawTransaction fetches one decoded transaction together with its block
// linkage. Used by the operator reprocess hook when the store copy is gone.
func (c *Client) RawTransaction(ctx context.Context, txid string) (tx *chain.Tx, blockHash string, blockHeight uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_raw_transaction", err, started)
	}()

	if err = c.take(ctx); err != nil {
		return nil, "", 0, err
	}
	params, err := marshalParams(txid, true)
	if err != nil {
		return nil, "", 0, err
	}
	res, err := c.caller.RawRequest("getrawtransaction", params)
	if err != nil {
		return nil, "", 0, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}

	var raw rawTxVerbose
	if err = json.Unmarshal(res, &raw); err != nil {
		return nil, "", 0, fmt.Errorf("decode transaction %s: %w", txid, err)
	}
	converted, err := convertTx(raw.rawTx, c.logger)
	if err != nil {
		return nil, "", 0, err
	}
	height, err := safe.Uint64(raw.Height)
	if err != nil {
		return nil, "", 0, fmt.Errorf("transaction %s height: %w", txid, err)
	}
	return &converted, raw.BlockHash, height, nil
}

func marshalParams(params ...any) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal rpc param: %w", err)
		}
		out = append(out, raw)
	}
	return out, nil
}
