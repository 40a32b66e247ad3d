package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	ports "model-inference-service/internal/core/ports/output"
)

// MockAlertClient is a testify mock for the alert dispatch port.
type MockAlertClient struct {
	mock.Mock
}

func (m *MockAlertClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockAlertClient) SendDriftAlert(ctx context.Context, alert ports.DriftAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

var _ ports.AlertClient = (*MockAlertClient)(nil)
