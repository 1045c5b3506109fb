package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// DefaultTitle is the embed title for periodic status updates.
const DefaultTitle = "Penumbra Network Update"

// maxPairNameLen guards against raw asset IDs leaking into the message;
// anything longer renders as a generic placeholder.
const maxPairNameLen = 20

// StatusMessage renders a Snapshot into the human-readable Discord status
// update. Pure presentation — no I/O, no mutation of the snapshot.
func StatusMessage(snap *snapshot.Snapshot, notifyInterval time.Duration) string {
	nextUpdate := time.Now().UTC().Add(notifyInterval)

	var b strings.Builder
	b.WriteString("🌟 **Penumbra Network Status Update**\n\n")

	b.WriteString("📊 **Network Health**\n")
	fmt.Fprintf(&b, "• Current Epoch: **%d**\n", snap.Network.CurrentEpoch)
	fmt.Fprintf(&b, "• Block Height: **%s**\n", addCommas(fmt.Sprintf("%d", snap.Network.BlockHeight)))
	fmt.Fprintf(&b, "• Network Uptime: **%.1f%%**\n\n", snap.Network.UptimePercentage)

	b.WriteString("💰 **Total Value Locked (TVL)**\n")
	fmt.Fprintf(&b, "• Total TVL: **$%s**\n", addCommas(fmt.Sprintf("%.0f", snap.TVL.TotalUSD)))
	fmt.Fprintf(&b, "• DEX TVL: **$%s USDC**\n", addCommas(fmt.Sprintf("%.0f", snap.TVL.DEXUSD)))
	fmt.Fprintf(&b, "• Staking TVL: **%s UM**\n\n", addCommas(fmt.Sprintf("%.0f", snap.Staking.TotalStakedUM)))

	b.WriteString("🔄 **Trading Activity**\n")
	fmt.Fprintf(&b, "• Active Trading Pairs: **%d**\n", snap.Trading.ActivePairsCount)
	fmt.Fprintf(&b, "• 24h Volume: **$%s USDC**\n", addCommas(fmt.Sprintf("%.0f", snap.Trading.TotalVolume24hUSD)))
	b.WriteString("• Top 3 Pairs:\n")
	b.WriteString(formatTopPairs(snap.Trading.TopPairs))
	b.WriteString("\n\n")

	b.WriteString("🏆 **LQT Tournament**\n")
	fmt.Fprintf(&b, "• Total Participants: **%s**\n", addCommas(fmt.Sprintf("%d", snap.LQT.TotalParticipants)))
	fmt.Fprintf(&b, "• Active (24h): **%d**\n", snap.LQT.ActiveParticipants24h)
	fmt.Fprintf(&b, "• 24h Volume: **$%s**\n\n", addCommas(fmt.Sprintf("%.0f", snap.LQT.Volume24hUSD)))

	b.WriteString("⚡ **Network Activity**\n")
	fmt.Fprintf(&b, "• Transactions (24h): **%d**\n", snap.Transactions.Total24h)
	fmt.Fprintf(&b, "• Tx Rate: **%.1f/min**\n\n", snap.Transactions.PerMinute)

	b.WriteString("🔒 **Privacy (MVAS)**\n")
	fmt.Fprintf(&b, "• MVAS Adoption: **%.1f%%**\n", snap.Privacy.MVASPercentage)
	fmt.Fprintf(&b, "• Private Volume (24h): **$%s**\n\n", addCommas(fmt.Sprintf("%.0f", snap.Privacy.MVASVolume24hUSD)))

	fmt.Fprintf(&b, "⏰ **Next Update:** %s (%s)\n\n",
		nextUpdate.Format("15:04 UTC"), formatInterval(notifyInterval))
	b.WriteString("*Data powered by Penumbra RPC & Pindexer*")

	return b.String()
}

func formatTopPairs(pairs []snapshot.TradingPair) string {
	if len(pairs) == 0 {
		return "  • No trading pairs available"
	}

	lines := make([]string, 0, 3)
	for i, p := range pairs {
		if i >= 3 {
			break
		}
		name := p.Name
		if len(name) > maxPairNameLen {
			name = fmt.Sprintf("Pair #%d", i+1)
		}
		volume := p.Volume
		if volume == "" {
			volume = "0 USDC"
		}
		lines = append(lines, fmt.Sprintf("  • **%s**: %s", name, volume))
	}
	return strings.Join(lines, "\n")
}

func formatInterval(d time.Duration) string {
	if h := d.Hours(); h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return d.String()
}

func addCommas(s string) string {
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	n := len(intPart)
	if n <= 3 {
		return s
	}
	var result []byte
	for i, c := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	if len(parts) == 2 {
		return string(result) + "." + parts[1]
	}
	return string(result)
}
