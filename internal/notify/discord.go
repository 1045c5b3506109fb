// Package notify formats snapshots into status messages and delivers them
// to a Discord webhook channel.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const embedColor = 0x7447FF // Penumbra purple

// Discord delivers messages to a webhook-style channel. A 204 response is
// success; anything else is a delivery failure that callers log and drop —
// no retries.
type Discord struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

func NewDiscord(webhookURL string, logger *slog.Logger) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type embed struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Color       int         `json:"color"`
	Footer      embedFooter `json:"footer"`
}

type embedFooter struct {
	Text string `json:"text"`
}

// Send posts the message as a Discord embed.
func (d *Discord) Send(ctx context.Context, title, message string) error {
	payload := struct {
		Embeds []embed `json:"embeds"`
	}{
		Embeds: []embed{{
			Title:       title,
			Description: message,
			Color:       embedColor,
			Footer:      embedFooter{Text: "Penumbra Analytics Service"},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	d.logger.Info("discord message sent", "title", title)
	return nil
}
