package syncer

import "errors"

// ErrReorgDepthExceeded reports a fork deeper than the configured rollback
// limit. The blocks service parks in the error state until an operator raises
// the limit or repairs the store.
var ErrReorgDepthExceeded = errors.New("reorg depth exceeded")
