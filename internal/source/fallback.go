package source

import "github.com/web3-frozen/penumbra-analytics/internal/snapshot"

// fallbackTVLMultiple estimates DEX TVL as a multiple of 24h volume when no
// real liquidity figure is available.
const fallbackTVLMultiple = 25

// FallbackTradingData returns the static substitute dataset used when the
// indexer is not configured or a live fetch failed. Epoch, validator and
// voting power figures stay zero since nothing real backs them.
func FallbackTradingData() *TradingData {
	topPairs := []snapshot.TradingPair{
		{Name: "UM/USDC", Volume: "4,142.8 USDC", VolumeUSD: 4142.8},
		{Name: "T414E72/UM", Volume: "1,040.0 USDC", VolumeUSD: 1040.0},
		{Name: "UM/T414E72", Volume: "1,013.4 USDC", VolumeUSD: 1013.4},
		{Name: "ATOM/UM", Volume: "38.4 USDC", VolumeUSD: 38.4},
		{Name: "ATOM/USDC", Volume: "35.4 USDC", VolumeUSD: 35.4},
	}

	var totalVolume float64
	for _, p := range topPairs {
		totalVolume += p.VolumeUSD
	}

	return &TradingData{
		ActivePairsCount:     len(topPairs),
		TopPairs:             topPairs,
		TotalVolume24hUSD:    totalVolume,
		DEXTVLUSD:            totalVolume * fallbackTVLMultiple,
		LQTTotalParticipants: 1024,
		LQTActive24h:         25,
		LQTVolume24hUSD:      totalVolume * 0.8,
		ActiveAddressesDaily: 80,
		TradingPairsCount:    len(topPairs),
		UniqueAssetTypes:     10,
	}
}
