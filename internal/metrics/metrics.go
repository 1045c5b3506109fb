// Package metrics defines the Prometheus time series republished from each
// Snapshot, plus HTTP and collection-cycle instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "penumbra"

// ── Network ────────────────────────────────────────────────────────────

var (
	BlockHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "block_height", Help: "Current block height.",
	})
	CurrentEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "current_epoch", Help: "Current epoch.",
	})
	NetworkUptime = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "network_uptime_percentage", Help: "Network uptime percentage.",
	})
)

// ── TVL ────────────────────────────────────────────────────────────────

var (
	TVLTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "tvl_total_usd", Help: "Total Value Locked in USD.",
	})
	TVLDex = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "tvl_dex_usd", Help: "DEX TVL in USD.",
	})
	TVLStaking = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "tvl_staking_usd", Help: "Staking TVL in USD.",
	})
)

// ── Trading ────────────────────────────────────────────────────────────

var (
	TradingPairsCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "trading_pairs_count", Help: "Number of active trading pairs.",
	})
	TradingVolume24h = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "trading_volume_24h_usd", Help: "24h trading volume in USD.",
	})
)

// ── Transactions ───────────────────────────────────────────────────────

var (
	Transactions24h = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "transactions_24h_total", Help: "Total transactions in 24h.",
	})
	TransactionsPerSecond = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "transactions_per_second", Help: "Transactions per second.",
	})
	TransactionsPerMinute = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "transactions_per_minute", Help: "Transactions per minute.",
	})
)

// ── Liquidity tournament ───────────────────────────────────────────────

var (
	LQTParticipantsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "lqt_participants_total", Help: "Total LQT participants.",
	})
	LQTParticipants24h = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "lqt_participants_24h", Help: "Active LQT participants in 24h.",
	})
	LQTVolume24h = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "lqt_volume_24h_usd", Help: "LQT volume in 24h USD.",
	})
)

// ── Staking ────────────────────────────────────────────────────────────

var (
	ActiveValidators = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "active_validators", Help: "Number of active validators.",
	})
	TotalStakedUM = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "total_staked_um", Help: "Total staked UM.",
	})
	TotalStakedUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "total_staked_usd", Help: "Total staked value in USD.",
	})
)

// ── Addresses ──────────────────────────────────────────────────────────

var (
	ActiveAddressesDaily = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "active_addresses_daily", Help: "Active addresses daily.",
	})
	ActiveAddressesWeekly = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "active_addresses_weekly", Help: "Active addresses weekly.",
	})
)

// ── Service health ─────────────────────────────────────────────────────

var (
	BotUptimeHours = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "bot_uptime_hours", Help: "Service uptime in hours.",
	})
	BotErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "bot_errors_total", Help: "Total service errors.",
	})
	BotLastUpdate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "bot_last_update_timestamp", Help: "Unix timestamp of the last snapshot.",
	})

	DataSourceHealthy = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Name: "data_source_healthy", Help: "Data source health status (1 healthy, 0 not).",
	}, []string{"source"})

	CollectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "collect", Name: "total",
		Help: "Total collection cycles by outcome.",
	}, []string{"status"})
	CollectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: "collect", Name: "duration_seconds",
		Help:    "Duration of one aggregation cycle in seconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "notify", Name: "sent_total",
		Help: "Total status updates successfully delivered.",
	})
	NotificationsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: "notify", Name: "failed_total",
		Help: "Total status update delivery failures.",
	})
)

// ── HTTP request metrics (RED method) ──────────────────────────────────

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being processed.",
	})
)
