package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

type stubCollector struct {
	snap *snapshot.Snapshot
}

func (c *stubCollector) Collect(context.Context) *snapshot.Snapshot { return c.snap }

type stubExporter struct {
	updates int
}

func (e *stubExporter) Update(*snapshot.Snapshot) { e.updates++ }

type stubNotifier struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (n *stubNotifier) Send(_ context.Context, title, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("delivery failed")
	}
	n.sent = append(n.sent, title)
	return nil
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type memState struct {
	last time.Time
}

func (m *memState) LastSent() time.Time                       { return m.last }
func (m *memState) SetLastSent(_ context.Context, t time.Time) { m.last = t }

func healthySnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Sources: snapshot.Sources{
			PenumbraNode: snapshot.SourceHealth{Configured: true, Healthy: true},
		},
	}
}

func newTestScheduler(notifier *stubNotifier, state *memState) *Scheduler {
	return New(&stubCollector{snap: healthySnapshot()}, &stubExporter{}, notifier, state,
		30*time.Second, 3*time.Hour, slog.Default())
}

func TestNewPrimesLastSent(t *testing.T) {
	state := &memState{}
	newTestScheduler(&stubNotifier{}, state)

	if state.last.IsZero() {
		t.Fatal("last-sent was not primed")
	}
	if time.Since(state.last) < 3*time.Hour {
		t.Errorf("primed last-sent %v is too recent; first update would be delayed", state.last)
	}
}

func TestNewKeepsPersistedLastSent(t *testing.T) {
	persisted := time.Now().Add(-30 * time.Minute)
	state := &memState{last: persisted}
	newTestScheduler(&stubNotifier{}, state)

	if !state.last.Equal(persisted) {
		t.Errorf("persisted last-sent was overwritten: %v", state.last)
	}
}

func TestMaybeNotifyDispatchesOnceAndResets(t *testing.T) {
	notifier := &stubNotifier{}
	state := &memState{last: time.Now().Add(-4 * time.Hour)}
	s := newTestScheduler(notifier, state)

	snap := healthySnapshot()
	s.maybeNotify(context.Background(), snap)
	if notifier.count() != 1 {
		t.Fatalf("sent = %d, want 1 after interval elapsed", notifier.count())
	}

	// One minute later: nothing to send.
	s.now = func() time.Time { return time.Now().Add(time.Minute) }
	s.maybeNotify(context.Background(), snap)
	if notifier.count() != 1 {
		t.Errorf("sent = %d, want still 1 shortly after a dispatch", notifier.count())
	}
}

func TestMaybeNotifySkipsWithinInterval(t *testing.T) {
	notifier := &stubNotifier{}
	state := &memState{last: time.Now().Add(-time.Hour)}
	s := newTestScheduler(notifier, state)

	s.maybeNotify(context.Background(), healthySnapshot())
	if notifier.count() != 0 {
		t.Errorf("sent = %d, want 0 within the notify interval", notifier.count())
	}
}

func TestMaybeNotifyFailureDoesNotResetTimer(t *testing.T) {
	notifier := &stubNotifier{fail: true}
	before := time.Now().Add(-4 * time.Hour)
	state := &memState{last: before}
	s := newTestScheduler(notifier, state)

	s.maybeNotify(context.Background(), healthySnapshot())
	if !state.last.Equal(before) {
		t.Error("failed delivery must not reset the last-sent timestamp")
	}

	// Next tick retries.
	notifier.fail = false
	s.maybeNotify(context.Background(), healthySnapshot())
	if notifier.count() != 1 {
		t.Errorf("sent = %d, want 1 on retry after failure", notifier.count())
	}
}

func TestRunCycleUpdatesLatestAndExporter(t *testing.T) {
	exporter := &stubExporter{}
	state := &memState{last: time.Now()}
	s := New(&stubCollector{snap: healthySnapshot()}, exporter, &stubNotifier{}, state,
		30*time.Second, 3*time.Hour, slog.Default())

	if s.Latest() != nil {
		t.Fatal("Latest should be nil before the first cycle")
	}

	s.runCycle(context.Background())

	if s.Latest() == nil {
		t.Fatal("Latest is nil after a cycle")
	}
	if exporter.updates != 1 {
		t.Errorf("exporter updates = %d, want 1", exporter.updates)
	}
}

func TestCollectStatus(t *testing.T) {
	tests := []struct {
		name string
		snap *snapshot.Snapshot
		want string
	}{
		{
			name: "node healthy, indexer unconfigured",
			snap: &snapshot.Snapshot{Sources: snapshot.Sources{
				PenumbraNode: snapshot.SourceHealth{Healthy: true},
			}},
			want: "ok",
		},
		{
			name: "node healthy, indexer configured and healthy",
			snap: &snapshot.Snapshot{Sources: snapshot.Sources{
				PenumbraNode: snapshot.SourceHealth{Healthy: true},
				Indexer:      snapshot.SourceHealth{Configured: true, Healthy: true},
			}},
			want: "ok",
		},
		{
			name: "indexer configured but down",
			snap: &snapshot.Snapshot{Sources: snapshot.Sources{
				PenumbraNode: snapshot.SourceHealth{Healthy: true},
				Indexer:      snapshot.SourceHealth{Configured: true},
			}},
			want: "degraded",
		},
		{
			name: "node down",
			snap: &snapshot.Snapshot{},
			want: "degraded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collectStatus(tt.snap); got != tt.want {
				t.Errorf("collectStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
