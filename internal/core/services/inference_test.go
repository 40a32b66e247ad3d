package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"model-inference-service/internal/core/domain"
	"model-inference-service/internal/metrics"
	"model-inference-service/internal/testutil"
)

func newTestInference(alerts *testutil.MockAlertClient, enforced bool) *InferenceService {
	model := testModel()
	return NewInferenceService(
		NewValidator(model),
		NewDriftDetector(testBaseline(), nil),
		NewPredictor(model),
		metrics.NewRegistry(),
		alerts,
		enforced,
	)
}

func TestInferenceService_PredictionPerInstance(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	svc := newTestInference(alerts, false)

	instances := []domain.Instance{
		{Vector: []any{5.1, 3.5, 1.4, 0.2}},
		{Vector: []any{6.0, 2.9, 4.5, 1.5}},
		{Vector: []any{5.0, 3.0, 1.6, 0.4}},
	}

	result, err := svc.Predict(context.Background(), instances)
	require.NoError(t, err)
	assert.Len(t, result.Predictions, len(instances))
	assert.False(t, result.Drift.DriftDetected)
}

func TestInferenceService_VectorMapEquivalence(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	svc := newTestInference(alerts, false)

	asVector, err := svc.Predict(context.Background(), []domain.Instance{
		{Vector: []any{6.0, 2.9, 4.5, 1.5}},
	})
	require.NoError(t, err)

	asMap, err := svc.Predict(context.Background(), []domain.Instance{
		{Fields: map[string]any{
			"petal_width":  1.5,
			"petal_length": 4.5,
			"sepal_width":  2.9,
			"sepal_length": 6.0,
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, asVector.Predictions, asMap.Predictions)
	assert.Equal(t, asVector.Drift, asMap.Drift)
}

func TestInferenceService_ValidationErrorPropagates(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	svc := newTestInference(alerts, false)

	_, err := svc.Predict(context.Background(), []domain.Instance{
		{Fields: map[string]any{"sepal_length": 5.1}},
	})
	assert.ErrorIs(t, err, domain.ErrMissingFeature)
}

func TestInferenceService_NoDispatchWithoutEndpoint(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	alerts.On("IsConfigured").Return(false)
	svc := newTestInference(alerts, true)

	result, err := svc.Predict(context.Background(), []domain.Instance{
		{Vector: []any{100, 100, 100, 100}},
	})
	require.NoError(t, err)
	assert.True(t, result.Drift.DriftDetected)
	alerts.AssertNotCalled(t, "SendDriftAlert", mock.Anything, mock.Anything)
}

func TestInferenceService_EnforcedDispatchFailure(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	alerts.On("IsConfigured").Return(true)
	alerts.On("SendDriftAlert", mock.Anything, mock.Anything).Return(assert.AnError)
	svc := newTestInference(alerts, true)

	_, err := svc.Predict(context.Background(), []domain.Instance{
		{Vector: []any{100, 100, 100, 100}},
	})
	assert.ErrorIs(t, err, domain.ErrDispatch)
}

func TestInferenceService_EnforcedDispatchSuccess(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	alerts.On("IsConfigured").Return(true)
	alerts.On("SendDriftAlert", mock.Anything, mock.Anything).Return(nil)
	svc := newTestInference(alerts, true)

	result, err := svc.Predict(context.Background(), []domain.Instance{
		{Vector: []any{100, 100, 100, 100}},
	})
	require.NoError(t, err)
	assert.True(t, result.Drift.DriftDetected)
	alerts.AssertCalled(t, "SendDriftAlert", mock.Anything, mock.Anything)
}

func TestInferenceService_BestEffortDispatchFailure(t *testing.T) {
	alerts := new(testutil.MockAlertClient)
	alerts.On("IsConfigured").Return(true)
	alerts.On("SendDriftAlert", mock.Anything, mock.Anything).Return(assert.AnError)
	svc := newTestInference(alerts, false)

	// The request must succeed even though dispatch will fail.
	result, err := svc.Predict(context.Background(), []domain.Instance{
		{Vector: []any{100, 100, 100, 100}},
	})
	require.NoError(t, err)
	assert.True(t, result.Drift.DriftDetected)
	assert.Greater(t, result.Drift.DriftScore, 5.0)
}
