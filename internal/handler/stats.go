package handler

import (
	"encoding/json"
	"net/http"
)

// Stats serves the latest Snapshot as JSON. Returns 503 until the first
// collection cycle completes.
func Stats(p SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap := p.Latest()
		if snap == nil {
			http.Error(w, `{"error":"no data available yet"}`, http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	}
}
