package handler

import (
	"net/http"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// SnapshotProvider exposes the most recent aggregation result.
type SnapshotProvider interface {
	Latest() *snapshot.Snapshot
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","service":"penumbra-analytics"}`))
	}
}

// Ready reports ready once the first collection cycle has produced a
// snapshot.
func Ready(p SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if p.Latest() == nil {
			http.Error(w, `{"status":"not ready"}`, http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}
}
