package snapshot

import (
	"fmt"
	"math"
	"strings"
)

// Scale factors for values arriving in the chain's smallest units. The
// aggregate summary tables and voting power use the standard 10^6 micro-unit
// scale; the per-pair summary volumes arrive in a different upstream
// representation with its own divisor. Both are kept distinct on purpose —
// do not unify them without confirming with the pindexer owners.
const (
	MicroUnitScale  = 1_000_000
	PairVolumeScale = 10_240_000
)

const secondsPerDay = 24 * 60 * 60

// MicroToBase converts a micro-denomination integer amount to its base
// denomination (e.g. micro-UM voting power to UM).
func MicroToBase(v float64) float64 {
	return v / MicroUnitScale
}

// PairVolumeUSD converts a raw per-pair volume from dex_ex_pairs_summary
// into decimal USDC.
func PairVolumeUSD(raw float64) float64 {
	return raw / PairVolumeScale
}

// TxRates derives per-second, per-minute and per-hour transaction rates
// from a 24-hour total.
func TxRates(total24h int) (perSecond, perMinute, ratePerHour float64) {
	t := float64(total24h)
	ps := t / secondsPerDay
	return roundTo(ps, 3), roundTo(ps*60, 1), roundTo(t/24, 1)
}

// TotalValueLocked is the sum of the DEX liquidity figure and the staking
// figure, nothing else. Staking stays at zero until a real price oracle is
// wired in — we never synthesize a USD estimate from a made-up rate.
func TotalValueLocked(dexUSD, stakingUSD float64) float64 {
	return dexUSD + stakingUSD
}

// FormatVolumeUSDC renders a volume as a display string like
// "4,142.8 USDC". Zero renders as "0 USDC".
func FormatVolumeUSDC(v float64) string {
	if v == 0 {
		return "0 USDC"
	}
	return addCommas(fmt.Sprintf("%.1f", v)) + " USDC"
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func addCommas(s string) string {
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	n := len(intPart)
	if n <= 3 {
		if len(parts) == 2 {
			return intPart + "." + parts[1]
		}
		return intPart
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
