// Package discord delivers new-entry summaries to a Discord webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"feedwatch/domain"
)

// messageLimit is Discord's hard cap on message content length.
const messageLimit = 2000

type Notifier struct {
	webhookURL string
	client     *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type payload struct {
	Content string `json:"content"`
}

// Notify sends one message listing every entry, truncated to the
// Discord limit. An empty batch sends nothing.
func (n *Notifier) Notify(ctx context.Context, entries []domain.NewEntry) error {
	if len(entries) == 0 {
		return nil
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "**New RSS Feed Entries Found:**")
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("**%s**: [%s](%s)", e.Feed, e.Title, e.Link))
	}
	message := strings.Join(lines, "\n")
	if runes := []rune(message); len(runes) > messageLimit {
		message = string(runes[:messageLimit])
	}

	body, err := json.Marshal(payload{Content: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}

	return nil
}
