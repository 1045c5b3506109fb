// Package scheduler drives the aggregation cycle on a fixed interval and
// decides when a status update should go out to the notification channel.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/web3-frozen/penumbra-analytics/internal/metrics"
	"github.com/web3-frozen/penumbra-analytics/internal/notify"
	"github.com/web3-frozen/penumbra-analytics/internal/snapshot"
)

// Collector produces one Snapshot per cycle. It never fails for source
// reasons — degradation is expressed inside the Snapshot.
type Collector interface {
	Collect(ctx context.Context) *snapshot.Snapshot
}

// Exporter republishes a Snapshot as metrics.
type Exporter interface {
	Update(snap *snapshot.Snapshot)
}

// Notifier delivers a formatted message to the notification channel.
type Notifier interface {
	Send(ctx context.Context, title, message string) error
}

// SendState tracks the last successful notification dispatch.
type SendState interface {
	LastSent() time.Time
	SetLastSent(ctx context.Context, t time.Time)
}

type Scheduler struct {
	collector      Collector
	exporter       Exporter
	notifier       Notifier
	sendState      SendState
	updateInterval time.Duration
	notifyInterval time.Duration
	logger         *slog.Logger

	now func() time.Time

	mu     sync.RWMutex
	latest *snapshot.Snapshot
}

func New(collector Collector, exporter Exporter, notifier Notifier, state SendState,
	updateInterval, notifyInterval time.Duration, logger *slog.Logger) *Scheduler {
	s := &Scheduler{
		collector:      collector,
		exporter:       exporter,
		notifier:       notifier,
		sendState:      state,
		updateInterval: updateInterval,
		notifyInterval: notifyInterval,
		logger:         logger,
		now:            time.Now,
	}
	// Prime the last-sent timestamp so the first update goes out right
	// after the first successful collection.
	if state.LastSent().IsZero() {
		state.SetLastSent(context.Background(), s.now().Add(-notifyInterval-time.Hour))
	}
	return s
}

// Latest returns the most recent Snapshot, or nil before the first cycle.
func (s *Scheduler) Latest() *snapshot.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Run executes collection cycles until the context is cancelled. Cycles
// never overlap: the ticker fires into a single loop, so a slow cycle
// simply delays the next one.
func (s *Scheduler) Run(ctx context.Context) {
	s.runCycle(ctx)

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	start := s.now()
	snap := s.collector.Collect(ctx)
	metrics.CollectDuration.Observe(s.now().Sub(start).Seconds())
	metrics.CollectTotal.WithLabelValues(collectStatus(snap)).Inc()

	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()

	s.exporter.Update(snap)

	s.logger.Info("data updated",
		"epoch", snap.Network.CurrentEpoch,
		"height", snap.Network.BlockHeight,
		"tvl_usd", snap.TVL.TotalUSD,
	)

	s.maybeNotify(ctx, snap)
}

// maybeNotify dispatches a status update when the notify interval has
// elapsed. Delivery failures are logged and swallowed; the timestamp is
// only reset on success, so a failed send is retried on the next tick.
func (s *Scheduler) maybeNotify(ctx context.Context, snap *snapshot.Snapshot) {
	now := s.now()
	if now.Sub(s.sendState.LastSent()) < s.notifyInterval {
		return
	}

	message := notify.StatusMessage(snap, s.notifyInterval)
	if err := s.notifier.Send(ctx, notify.DefaultTitle, message); err != nil {
		s.logger.Error("status update delivery failed", "error", err)
		metrics.NotificationsFailedTotal.Inc()
		metrics.BotErrorsTotal.Inc()
		return
	}

	s.sendState.SetLastSent(ctx, now)
	metrics.NotificationsSentTotal.Inc()
	s.logger.Info("status update sent")
}

func collectStatus(snap *snapshot.Snapshot) string {
	if snap.Sources.PenumbraNode.Healthy &&
		(!snap.Sources.Indexer.Configured || snap.Sources.Indexer.Healthy) {
		return "ok"
	}
	return "degraded"
}
