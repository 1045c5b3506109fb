package source

import (
	"context"
	"testing"
)

func TestFallbackTradingData(t *testing.T) {
	d := FallbackTradingData()

	if len(d.TopPairs) != 5 {
		t.Fatalf("len(TopPairs) = %d, want 5", len(d.TopPairs))
	}
	if d.TotalVolume24hUSD != 6270.0 {
		t.Errorf("TotalVolume24hUSD = %v, want 6270.0", d.TotalVolume24hUSD)
	}
	if d.DEXTVLUSD != 156750.0 {
		t.Errorf("DEXTVLUSD = %v, want 156750.0", d.DEXTVLUSD)
	}
	if d.LQTTotalParticipants != 1024 {
		t.Errorf("LQTTotalParticipants = %d, want 1024", d.LQTTotalParticipants)
	}
	if d.LQTVolume24hUSD != 6270.0*0.8 {
		t.Errorf("LQTVolume24hUSD = %v, want %v", d.LQTVolume24hUSD, 6270.0*0.8)
	}
	if d.TopPairs[0].Name != "UM/USDC" {
		t.Errorf("TopPairs[0].Name = %q, want %q", d.TopPairs[0].Name, "UM/USDC")
	}
	// No indexer means no real epoch, validator or voting power figures.
	if d.CurrentEpoch != 0 || d.ActiveValidators != 0 || d.TotalVotingPower != 0 {
		t.Errorf("chain figures should be zero in fallback, got epoch=%d validators=%d power=%d",
			d.CurrentEpoch, d.ActiveValidators, d.TotalVotingPower)
	}
}

func TestTxEstimator(t *testing.T) {
	stats, err := NewTxEstimator().FetchTransactionStats(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactionStats error: %v", err)
	}
	if stats.Total24h != 253 {
		t.Errorf("Total24h = %d, want 253", stats.Total24h)
	}
	if stats.PerSecond != 0.003 {
		t.Errorf("PerSecond = %v, want 0.003", stats.PerSecond)
	}
	if stats.PerMinute != 0.2 {
		t.Errorf("PerMinute = %v, want 0.2", stats.PerMinute)
	}
	if stats.RatePerHour != 10.5 {
		t.Errorf("RatePerHour = %v, want 10.5", stats.RatePerHour)
	}
}
