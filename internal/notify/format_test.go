package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Network: snapshot.Network{
			BlockHeight:      1234567,
			CurrentEpoch:     89,
			UptimePercentage: 99.9,
		},
		Staking: snapshot.Staking{TotalStakedUM: 81234567},
		Trading: snapshot.Trading{
			ActivePairsCount:  5,
			TotalVolume24hUSD: 6270,
			TopPairs: []snapshot.TradingPair{
				{Name: "UM/USDC", Volume: "4,142.8 USDC", VolumeUSD: 4142.8},
				{Name: "allBTC/UM", Volume: "1,040.0 USDC", VolumeUSD: 1040.0},
				{Name: "29ea9c2f.../76b3e4b1...", Volume: "1,013.4 USDC", VolumeUSD: 1013.4},
				{Name: "ATOM/UM", Volume: "38.4 USDC", VolumeUSD: 38.4},
			},
		},
		LQT:          snapshot.LQT{TotalParticipants: 1024, ActiveParticipants24h: 25, Volume24hUSD: 5016},
		Transactions: snapshot.Transactions{Total24h: 253, PerMinute: 0.2},
		Privacy:      snapshot.Privacy{MVASPercentage: 15.5},
		TVL:          snapshot.TVL{DEXUSD: 156750, TotalUSD: 156750},
	}
}

func TestStatusMessage(t *testing.T) {
	msg := StatusMessage(testSnapshot(), 3*time.Hour)

	for _, want := range []string{
		"Current Epoch: **89**",
		"Block Height: **1,234,567**",
		"Total TVL: **$156,750**",
		"Staking TVL: **81,234,567 UM**",
		"Active Trading Pairs: **5**",
		"**UM/USDC**: 4,142.8 USDC",
		"**allBTC/UM**: 1,040.0 USDC",
		"Total Participants: **1,024**",
		"Transactions (24h): **253**",
		"Tx Rate: **0.2/min**",
		"MVAS Adoption: **15.5%**",
		"(3h)",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}

	// Long raw asset IDs never leak into the message.
	if strings.Contains(msg, "29ea9c2f.../76b3e4b1...") {
		t.Error("raw asset ID pair name leaked into the message")
	}
	if !strings.Contains(msg, "Pair #3") {
		t.Error("long pair name was not replaced with a placeholder")
	}

	// Only the top three pairs are shown.
	if strings.Contains(msg, "ATOM/UM") {
		t.Error("message shows more than the top 3 pairs")
	}
}

func TestFormatTopPairsEmpty(t *testing.T) {
	got := formatTopPairs(nil)
	if got != "  • No trading pairs available" {
		t.Errorf("formatTopPairs(nil) = %q", got)
	}
}

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{3 * time.Hour, "3h"},
		{24 * time.Hour, "24h"},
		{90 * time.Minute, "1h30m0s"},
	}
	for _, tt := range tests {
		if got := formatInterval(tt.d); got != tt.want {
			t.Errorf("formatInterval(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
