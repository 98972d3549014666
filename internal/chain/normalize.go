package chain

import "strings"

const subAssetSeparator = "|"

// NormalizedName is the canonical form of an asset name. Top-level names are
// upper-cased in full. Sub-asset names keep the part after the first separator
// verbatim, including any further separators, so "MAIN|level1|level2" has
// parent "MAIN" and sub-name "level1|level2".
type NormalizedName struct {
	Name       string
	Parent     string
	SubName    string
	IsSubAsset bool
}

// NormalizeAssetName canonicalizes a declared asset name. Lookups compare
// normalized forms case-insensitively on the parent segment.
func NormalizeAssetName(declared string) NormalizedName {
	name := strings.TrimSpace(declared)
	parent, sub, found := strings.Cut(name, subAssetSeparator)
	parent = strings.ToUpper(strings.TrimSpace(parent))
	if !found {
		return NormalizedName{Name: parent}
	}
	return NormalizedName{
		Name:       parent + subAssetSeparator + sub,
		Parent:     parent,
		SubName:    sub,
		IsSubAsset: true,
	}
}
