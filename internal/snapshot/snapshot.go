// Package snapshot defines the unified result of one aggregation cycle
// and the pure unit-conversion helpers applied while building it.
package snapshot

import "time"

// Snapshot is the complete state of the network as seen by one collection
// cycle. Every field is always populated: when a source is unavailable the
// owning domain falls back to zero values or the static fallback dataset,
// and the Sources block records which values reflect real data. A Snapshot
// is built wholesale and never mutated afterwards.
type Snapshot struct {
	Network      Network      `json:"network"`
	Staking      Staking      `json:"staking"`
	Trading      Trading      `json:"trading"`
	LQT          LQT          `json:"lqt"`
	Transactions Transactions `json:"transactions"`
	Privacy      Privacy      `json:"privacy"`
	TVL          TVL          `json:"tvl"`
	Addresses    Addresses    `json:"addresses"`
	Assets       Assets       `json:"assets"`
	PraxWallet   PraxWallet   `json:"prax_wallet"`
	BotHealth    BotHealth    `json:"bot_health"`
	Sources      Sources      `json:"data_sources"`
	Meta         Meta         `json:"metadata"`
}

type Network struct {
	AvgBlockTimeSeconds float64 `json:"avg_block_time_seconds"`
	BlockHeight         int64   `json:"block_height"`
	CurrentEpoch        int64   `json:"current_epoch"`
	UptimePercentage    float64 `json:"network_uptime_percentage"`
}

type Staking struct {
	ActiveValidators  int     `json:"active_validators"`
	StakingPercentage float64 `json:"staking_percentage"`
	TotalStakedUM     float64 `json:"total_staked_um"`
	TotalStakedUSD    float64 `json:"total_staked_usd"`
	TotalVotingPower  int64   `json:"total_voting_power"`
}

type Trading struct {
	ActivePairsCount  int           `json:"active_pairs_count"`
	TopPairs          []TradingPair `json:"top_pairs"`
	TotalVolume24hUSD float64       `json:"total_volume_24h_usd"`
}

// TradingPair is one ranked pair. Name is derived from the asset ID
// prefixes, Volume is the display string, VolumeUSD the numeric value.
type TradingPair struct {
	Name      string  `json:"name"`
	Volume    string  `json:"volume"`
	VolumeUSD float64 `json:"volume_usd"`
}

type LQT struct {
	ActiveParticipants24h int     `json:"active_participants_24h"`
	RewardsDistributedUSD float64 `json:"rewards_distributed_usd"`
	TotalParticipants     int     `json:"total_participants"`
	TotalVolumeUSD        float64 `json:"total_volume_usd"`
	Volume24hUSD          float64 `json:"volume_24h_usd"`
}

type Transactions struct {
	PerMinute   float64 `json:"per_minute"`
	PerSecond   float64 `json:"per_second"`
	RatePerHour float64 `json:"rate_per_hour"`
	Total24h    int     `json:"total_24h"`
}

type Privacy struct {
	MVASCount24h        int     `json:"mvas_count_24h"`
	MVASPercentage      float64 `json:"mvas_percentage"`
	MVASVolume24hUSD    float64 `json:"mvas_volume_24h_usd"`
	PrivacyAdoptionRate float64 `json:"privacy_adoption_rate"`
}

type TVL struct {
	DEXUSD     float64 `json:"dex_usd"`
	Source     string  `json:"source"`
	StakingUSD float64 `json:"staking_usd"`
	TotalUSD   float64 `json:"total_usd"`
}

type Addresses struct {
	ActiveDaily            int `json:"active_daily"`
	ActiveWeekly           int `json:"active_weekly"`
	ExchangeAddressesDaily int `json:"exchange_addresses_daily"`
	ExchangeAddressesWeek  int `json:"exchange_addresses_weekly"`
}

type Assets struct {
	TotalValueUSD     float64 `json:"total_value_usd"`
	TradingPairsCount int     `json:"trading_pairs_count"`
	UniqueTypesCount  int     `json:"unique_types_count"`
}

type PraxWallet struct {
	ActiveUsersDaily   int `json:"active_users_daily"`
	ActiveUsersMonthly int `json:"active_users_monthly"`
	DownloadsDaily     int `json:"downloads_daily"`
	DownloadsTotal     int `json:"downloads_total"`
	DownloadsWeekly    int `json:"downloads_weekly"`
}

type BotHealth struct {
	ErrorsLast24h int       `json:"errors_last_24h"`
	LastUpdate    time.Time `json:"last_update"`
	Status        string    `json:"status"`
	UptimeHours   float64   `json:"uptime_hours"`
}

// SourceHealth records whether the last fetch from a named source used real
// data. Overwritten every cycle.
type SourceHealth struct {
	Configured bool      `json:"configured"`
	Healthy    bool      `json:"healthy"`
	Endpoint   string    `json:"endpoint,omitempty"`
	LastCheck  time.Time `json:"last_check"`
}

type Sources struct {
	GoogleAnalytics SourceHealth `json:"google_analytics"`
	Indexer         SourceHealth `json:"indexer"`
	PenumbraNode    SourceHealth `json:"penumbra_node"`
}

type Meta struct {
	APIVersion       string    `json:"api_version"`
	FreshnessSeconds int       `json:"data_freshness_seconds"`
	Source           string    `json:"source"`
	Timestamp        time.Time `json:"timestamp"`
}
