package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	ports "model-inference-service/internal/core/ports/output"
)

type alertPayload struct {
	Event         string   `json:"event"`
	Score         float64  `json:"score"`
	ViolatedRules []string `json:"violated_rules,omitempty"`
	Timestamp     string   `json:"timestamp"`
}

// Client posts drift alerts to a configured webhook endpoint. An empty
// endpoint yields a no-op client.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
	}
}

func (c *Client) IsConfigured() bool {
	return c.endpoint != ""
}

func (c *Client) SendDriftAlert(ctx context.Context, alert ports.DriftAlert) error {
	if !c.IsConfigured() {
		return nil
	}

	payload := alertPayload{
		Event:         "drift_detected",
		Score:         alert.Score,
		ViolatedRules: alert.ViolatedRules,
		Timestamp:     alert.Timestamp.Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithFields(log.Fields{
		"url":   c.endpoint,
		"score": alert.Score,
	}).Debug("dispatching drift alert")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Ensure interface compliance
var _ ports.AlertClient = (*Client)(nil)
