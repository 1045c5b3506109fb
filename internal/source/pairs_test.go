package source

import "testing"

func TestAssetSymbol(t *testing.T) {
	tests := []struct {
		hexID string
		want  string
	}{
		{"29ea9c2f0a1b2c3d4e5f", "UM"},
		{"76b3e4b1deadbeef", "USDC"},
		{"414e723fcafebabe", "allBTC"},
		{"ffffffff00000000", "ffffffff..."},
		{"abc", "abc..."},
		{"", "..."},
	}
	for _, tt := range tests {
		if got := assetSymbol(tt.hexID); got != tt.want {
			t.Errorf("assetSymbol(%q) = %q, want %q", tt.hexID, got, tt.want)
		}
	}
}

func TestPairDisplayName(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"29ea9c2f11111111", "76b3e4b122222222", "UM/USDC"},
		{"414e723f33333333", "29ea9c2f44444444", "allBTC/UM"},
		{"deadbeef55555555", "29ea9c2f66666666", "deadbeef.../UM"},
		{"deadbeef", "cafebabe", "deadbeef.../cafebabe..."},
	}
	for _, tt := range tests {
		if got := pairDisplayName(tt.start, tt.end); got != tt.want {
			t.Errorf("pairDisplayName(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
