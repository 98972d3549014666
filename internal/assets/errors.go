package assets

import "fmt"

// DuplicateAssetError marks an asset_create whose id is already taken by a
// different declaration. The offending operation is skipped; the block that
// carries it still commits.
type DuplicateAssetError struct {
	AssetID string
}

func (e *DuplicateAssetError) Error() string {
	return fmt.Sprintf("asset %s already exists with a different declaration", e.AssetID)
}

// ImmutableAssetError marks an asset_update against an asset whose declaration
// does not permit updates.
type ImmutableAssetError struct {
	AssetID string
}

func (e *ImmutableAssetError) Error() string {
	return fmt.Sprintf("asset %s is not updatable", e.AssetID)
}
