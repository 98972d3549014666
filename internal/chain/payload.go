package chain

import (
	"encoding/json"
	"fmt"
)

// DecodeAssetPayload parses an assetData attachment. Callers treat a failure
// as a malformed declaration: the transaction is kept but downgraded to a
// standard transfer for asset purposes.
func DecodeAssetPayload(raw []byte) (*AssetPayload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p AssetPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode asset payload: %w", err)
	}
	if p.AssetID == "" {
		return nil, fmt.Errorf("decode asset payload: missing assetId")
	}
	return &p, nil
}

// DecodeFuturePayload parses a futureData attachment.
func DecodeFuturePayload(raw []byte) (*FuturePayload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p FuturePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode future payload: %w", err)
	}
	return &p, nil
}
