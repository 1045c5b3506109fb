// Package source contains one adapter per external data source. Each
// adapter fetches and parses its own source's native format and converts
// every transport or protocol error into a returned error — nothing raised
// here escapes past the adapter boundary.
package source

import (
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// fetchTimeout bounds every outbound call so a hung source cannot stall
// the collection cycle.
const fetchTimeout = 10 * time.Second

// NodeStatus is the parsed result of the node's /status endpoint.
type NodeStatus struct {
	BlockHeight int64
	BlockTime   time.Time
}

// TradingData is the normalized result of one indexer query set, or the
// static fallback dataset when the indexer is unconfigured or failed.
type TradingData struct {
	ActivePairsCount     int
	TopPairs             []snapshot.TradingPair
	TotalVolume24hUSD    float64
	DEXTVLUSD            float64
	LQTTotalParticipants int
	LQTActive24h         int
	LQTVolume24hUSD      float64
	ActiveAddressesDaily int
	TradingPairsCount    int
	UniqueAssetTypes     int
	CurrentEpoch         int64
	ActiveValidators     int
	TotalVotingPower     int64
}

// TransactionStats holds the 24h transaction total and its derived rates.
type TransactionStats struct {
	Total24h    int
	PerSecond   float64
	PerMinute   float64
	RatePerHour float64
}
