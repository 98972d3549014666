package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/assetsightworks/assetsight-backend/internal/model"
)

// resolveReorg walks back from the given height until the stored and node
// chains agree, rolls every table back to that ancestor, and returns it.
func (s *BlockIngester) resolveReorg(ctx context.Context, from uint64) (uint64, error) {
	s.logger.Warn("chain reorganization detected", zap.Uint64("height", from))

	ancestor, err := s.findAncestor(ctx, from)
	if err != nil {
		s.metrics.ObserveReorg(err, 0)
		return 0, err
	}
	depth := from - ancestor

	if err := s.rollback(ctx, ancestor); err != nil {
		s.metrics.ObserveReorg(err, depth)
		return 0, fmt.Errorf("rollback to %d: %w", ancestor, err)
	}

	s.metrics.ObserveReorg(nil, depth)
	s.logger.Info("chain reorganization resolved",
		zap.Uint64("ancestor", ancestor),
		zap.Uint64("depth", depth),
	)
	return ancestor, nil
}

// findAncestor compares stored and node hashes downward from the given
// height. The walk is bounded by the configured rollback limit.
func (s *BlockIngester) findAncestor(ctx context.Context, from uint64) (uint64, error) {
	for h := from; ; h-- {
		if from-h > s.cfg.MaxReorgDepth {
			return 0, fmt.Errorf("%w: no common ancestor within %d blocks of %d",
				ErrReorgDepthExceeded, s.cfg.MaxReorgDepth, from)
		}

		storedHash, found, err := s.store.BlockHashAtHeight(ctx, h)
		if err != nil {
			return 0, fmt.Errorf("stored hash at %d: %w", h, err)
		}
		nodeHash, err := s.source.BlockHash(ctx, h)
		if err != nil {
			return 0, fmt.Errorf("node hash at %d: %w", h, err)
		}
		if found && storedHash == nodeHash {
			return h, nil
		}
		if h == 0 {
			return 0, errors.New("node disagrees on the genesis block")
		}
	}
}

// rollback erases every chain row above the ancestor and rebuilds the
// materialized views from what survives. The touched keys are snapshotted
// before the delete so the rebuild knows which records to recompute.
func (s *BlockIngester) rollback(ctx context.Context, ancestor uint64) error {
	assetIDs, err := s.store.AssetIDsTouchedAbove(ctx, ancestor)
	if err != nil {
		return fmt.Errorf("assets touched above %d: %w", ancestor, err)
	}
	addresses, err := s.store.AddressesTouchedAbove(ctx, ancestor)
	if err != nil {
		return fmt.Errorf("addresses touched above %d: %w", ancestor, err)
	}

	if err := s.store.DeleteChainDataAboveHeight(ctx, ancestor); err != nil {
		return fmt.Errorf("delete chain data above %d: %w", ancestor, err)
	}

	if err := s.assets.Rebuild(ctx, assetIDs, addresses, ancestor); err != nil {
		return fmt.Errorf("rebuild assets: %w", err)
	}
	if err := s.futures.Revert(ctx, ancestor); err != nil {
		return fmt.Errorf("revert future outputs: %w", err)
	}

	return s.clampServices(ctx, ancestor)
}

// clampServices moves every service that got ahead of the ancestor back to
// it, so the replaying services re-derive their views from the surviving
// rows on their next tick.
func (s *BlockIngester) clampServices(ctx context.Context, ancestor uint64) error {
	for _, service := range model.SyncServices {
		state, err := s.store.SyncState(ctx, service)
		if err != nil {
			return fmt.Errorf("load %s state: %w", service, err)
		}
		if state == nil || state.CurrentBlock <= ancestor {
			continue
		}
		state.CurrentBlock = ancestor
		state.Status = model.SyncSyncing
		state.LastSyncedAt = time.Now().UTC()
		if err := s.store.UpsertSyncState(ctx, *state); err != nil {
			return fmt.Errorf("clamp %s state: %w", service, err)
		}
	}
	return nil
}
