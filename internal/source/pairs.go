package source

// assetPrefixLen is how many leading hex characters of an asset ID we match
// against the symbol table.
const assetPrefixLen = 8

// knownAssets maps asset ID hex prefixes to display symbols, taken from the
// live Penumbra DEX interface. Unmapped assets render as a truncated ID.
var knownAssets = map[string]string{
	"29ea9c2f": "UM",
	"76b3e4b1": "USDC",
	"414e723f": "allBTC",
	"000000":   "OSMO",
	"c9c1e3":   "CDT",
	"a1b2c3":   "TIA",
	"d4e5f6":   "ATOM",
}

// pairDisplayName builds a readable pair name from two asset ID hex strings.
func pairDisplayName(assetStartHex, assetEndHex string) string {
	return assetSymbol(assetStartHex) + "/" + assetSymbol(assetEndHex)
}

func assetSymbol(hexID string) string {
	prefix := hexID
	if len(prefix) > assetPrefixLen {
		prefix = prefix[:assetPrefixLen]
	}
	if sym, ok := knownAssets[prefix]; ok {
		return sym
	}
	return prefix + "..."
}
