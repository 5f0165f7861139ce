package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier announces noteworthy events to an out-of-band channel.
type Notifier interface {
	ProposalReceived(ctx context.Context, model, brand string)
}

// DiscordNotifier posts to a Discord webhook. Failures are logged by the
// caller at most; notifications never affect request outcomes.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

var _ Notifier = (*DiscordNotifier)(nil)

// NewDiscordNotifier creates a webhook notifier. An empty URL turns every
// notification into a no-op.
func NewDiscordNotifier(webhookURL string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// ProposalReceived posts a short message about a new device proposal.
func (n *DiscordNotifier) ProposalReceived(ctx context.Context, model, brand string) {
	if n.webhookURL == "" {
		return
	}

	content := fmt.Sprintf("New device proposal: %s", model)
	if brand != "" {
		content = fmt.Sprintf("New device proposal: %s (%s)", model, brand)
	}
	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
