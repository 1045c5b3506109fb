package metrics

import (
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// Exporter republishes Snapshot fields as Prometheus gauges.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// Update sets every gauge from the given snapshot. Called once per
// collection cycle.
func (e *Exporter) Update(snap *snapshot.Snapshot) {
	BlockHeight.Set(float64(snap.Network.BlockHeight))
	CurrentEpoch.Set(float64(snap.Network.CurrentEpoch))
	NetworkUptime.Set(snap.Network.UptimePercentage)

	TVLTotal.Set(snap.TVL.TotalUSD)
	TVLDex.Set(snap.TVL.DEXUSD)
	TVLStaking.Set(snap.TVL.StakingUSD)

	TradingPairsCount.Set(float64(snap.Trading.ActivePairsCount))
	TradingVolume24h.Set(snap.Trading.TotalVolume24hUSD)

	Transactions24h.Set(float64(snap.Transactions.Total24h))
	TransactionsPerSecond.Set(snap.Transactions.PerSecond)
	TransactionsPerMinute.Set(snap.Transactions.PerMinute)

	LQTParticipantsTotal.Set(float64(snap.LQT.TotalParticipants))
	LQTParticipants24h.Set(float64(snap.LQT.ActiveParticipants24h))
	LQTVolume24h.Set(snap.LQT.Volume24hUSD)

	ActiveValidators.Set(float64(snap.Staking.ActiveValidators))
	TotalStakedUM.Set(snap.Staking.TotalStakedUM)
	TotalStakedUSD.Set(snap.Staking.TotalStakedUSD)

	ActiveAddressesDaily.Set(float64(snap.Addresses.ActiveDaily))
	ActiveAddressesWeekly.Set(float64(snap.Addresses.ActiveWeekly))

	BotUptimeHours.Set(snap.BotHealth.UptimeHours)
	BotLastUpdate.Set(float64(time.Now().Unix()))

	setHealth("google_analytics", snap.Sources.GoogleAnalytics)
	setHealth("indexer", snap.Sources.Indexer)
	setHealth("penumbra_node", snap.Sources.PenumbraNode)
}

func setHealth(name string, h snapshot.SourceHealth) {
	v := 0.0
	if h.Healthy {
		v = 1.0
	}
	DataSourceHealthy.WithLabelValues(name).Set(v)
}
