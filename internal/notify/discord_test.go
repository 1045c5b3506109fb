package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscordSend(t *testing.T) {
	var received struct {
		Embeds []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Color       int    `json:"color"`
			Footer      struct {
				Text string `json:"text"`
			} `json:"footer"`
		} `json:"embeds"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := NewDiscord(srv.URL, slog.Default())
	if err := d.Send(context.Background(), "Test Title", "hello"); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("len(Embeds) = %d, want 1", len(received.Embeds))
	}
	e := received.Embeds[0]
	if e.Title != "Test Title" {
		t.Errorf("Title = %q, want %q", e.Title, "Test Title")
	}
	if e.Description != "hello" {
		t.Errorf("Description = %q, want %q", e.Description, "hello")
	}
	if e.Color != embedColor {
		t.Errorf("Color = %#x, want %#x", e.Color, embedColor)
	}
	if e.Footer.Text != "Penumbra Analytics Service" {
		t.Errorf("Footer = %q, want %q", e.Footer.Text, "Penumbra Analytics Service")
	}
}

func TestDiscordSendNon204IsFailure(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusTooManyRequests} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		d := NewDiscord(srv.URL, slog.Default())
		if err := d.Send(context.Background(), "t", "m"); err == nil {
			t.Errorf("status %d: expected error, got nil", status)
		}
		srv.Close()
	}
}

func TestDiscordSendTransportError(t *testing.T) {
	d := NewDiscord("http://127.0.0.1:1/webhook", slog.Default())
	if err := d.Send(context.Background(), "t", "m"); err == nil {
		t.Error("expected transport error, got nil")
	}
}
