package notify

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastSentKey = "penumbra:notify:last_sent"

// SendState tracks when the last status update was dispatched. When a Redis
// URL is configured the timestamp also survives restarts, so a redeploy
// doesn't immediately re-send; otherwise the state is purely in-memory.
// Redis failures degrade to the in-memory value, they never block sending.
type SendState struct {
	rdb *redis.Client

	mu   sync.Mutex
	last time.Time
}

// NewSendState creates the send-state tracker. redisURL may be empty.
func NewSendState(redisURL, password string) (*SendState, error) {
	s := &SendState{}
	if redisURL == "" {
		return s, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if password != "" {
		opts.Password = password
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	s.rdb = rdb
	if v, err := rdb.Get(ctx, lastSentKey).Result(); err == nil {
		if unix, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.last = time.Unix(unix, 0)
		}
	}
	return s, nil
}

// LastSent returns the time of the last successful dispatch; the zero time
// if none has been recorded.
func (s *SendState) LastSent() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// SetLastSent records a dispatch time.
func (s *SendState) SetLastSent(ctx context.Context, t time.Time) {
	s.mu.Lock()
	s.last = t
	s.mu.Unlock()

	if s.rdb != nil {
		s.rdb.Set(ctx, lastSentKey, strconv.FormatInt(t.Unix(), 10), 0)
	}
}

// Close shuts down the Redis connection if one exists.
func (s *SendState) Close() error {
	if s.rdb != nil {
		return s.rdb.Close()
	}
	return nil
}
