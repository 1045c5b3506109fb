package notify

import (
	"context"
	"testing"
	"time"
)

func TestSendStateInMemory(t *testing.T) {
	s, err := NewSendState("", "")
	if err != nil {
		t.Fatalf("NewSendState error: %v", err)
	}
	defer s.Close()

	if !s.LastSent().IsZero() {
		t.Errorf("LastSent = %v, want zero time initially", s.LastSent())
	}

	now := time.Now()
	s.SetLastSent(context.Background(), now)
	if !s.LastSent().Equal(now) {
		t.Errorf("LastSent = %v, want %v", s.LastSent(), now)
	}
}

func TestSendStateBadRedisURL(t *testing.T) {
	if _, err := NewSendState("not-a-url", ""); err == nil {
		t.Error("expected error for invalid redis URL, got nil")
	}
}
