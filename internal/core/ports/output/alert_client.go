package ports

import (
	"context"
	"time"
)

// DriftAlert is the notification payload sent when drift is detected.
type DriftAlert struct {
	Score         float64
	ViolatedRules []string
	Timestamp     time.Time
}

// AlertClient delivers drift alerts to an external endpoint.
type AlertClient interface {
	// IsConfigured reports whether an endpoint is set; when false, dispatch
	// is a no-op regardless of policy.
	IsConfigured() bool
	SendDriftAlert(ctx context.Context, alert DriftAlert) error
}
