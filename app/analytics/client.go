package analytics

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/posthog/posthog-go"
)

// Client sends product telemetry. Events are queued by the underlying
// library; nothing here blocks the request path.
type Client struct {
	posthog posthog.Client
}

// NewClient returns a disabled client when apiKey is empty, so telemetry is
// strictly opt-in.
func NewClient(apiKey, host string) (*Client, error) {
	if apiKey == "" {
		slog.Info("Telemetry disabled (POSTHOG_API_KEY not set)")
		return &Client{}, nil
	}

	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: host})
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry client: %w", err)
	}

	return &Client{posthog: ph}, nil
}

func (c *Client) TrackLinkSaved(userID string) {
	c.capture(posthog.Capture{
		DistinctId: userID,
		Event:      "link-saved",
	})
}

func (c *Client) TrackClassificationFailure(userID, pageURL string) {
	domain := ""
	if parsed, err := url.Parse(pageURL); err == nil {
		domain = parsed.Hostname()
	}

	c.capture(posthog.Capture{
		DistinctId: userID,
		Event:      "classification-failure",
		Properties: posthog.NewProperties().Set("domain", domain),
	})
}

func (c *Client) capture(event posthog.Capture) {
	if c.posthog == nil {
		return
	}
	if err := c.posthog.Enqueue(event); err != nil {
		slog.Warn("Failed to enqueue telemetry event", "event", event.Event, "error", err)
	}
}

func (c *Client) Close() {
	if c.posthog == nil {
		return
	}
	if err := c.posthog.Close(); err != nil {
		slog.Warn("Failed to close telemetry client", "error", err)
	}
}
