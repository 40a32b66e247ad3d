package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"model-inference-service/internal/core/domain"
	ports "model-inference-service/internal/core/ports/output"
	"model-inference-service/internal/metrics"
)

// predictionPreviewCap bounds the prediction sample in the per-request log
// record so large batches do not blow up log volume.
const predictionPreviewCap = 10

// InferenceService orchestrates one request: validate, predict, score drift,
// update metrics, dispatch alerts, log. Per-request errors never touch shared
// state.
type InferenceService struct {
	validator *Validator
	detector  *DriftDetector
	predictor *Predictor
	registry  *metrics.Registry
	alerts    ports.AlertClient
	enforced  bool
}

// NewInferenceService wires the request path. enforced selects the dispatch
// failure policy: true fails the request when an alert cannot be delivered,
// false logs and swallows.
func NewInferenceService(
	validator *Validator,
	detector *DriftDetector,
	predictor *Predictor,
	registry *metrics.Registry,
	alerts ports.AlertClient,
	enforced bool,
) *InferenceService {
	return &InferenceService{
		validator: validator,
		detector:  detector,
		predictor: predictor,
		registry:  registry,
		alerts:    alerts,
		enforced:  enforced,
	}
}

func (s *InferenceService) Predict(ctx context.Context, instances []domain.Instance) (*domain.PredictionResult, error) {
	s.registry.IncRequests()
	start := time.Now()
	defer func() {
		s.registry.ObserveLatency(time.Since(start))
	}()

	matrix, err := s.validator.Canonicalize(instances)
	if err != nil {
		return nil, err
	}

	labels, err := s.predictor.Predict(matrix)
	if err != nil {
		return nil, err
	}

	event := s.detector.Evaluate(matrix)
	if event.DriftDetected {
		s.registry.IncDriftEvents()
		if err := s.dispatchAlert(ctx, event); err != nil {
			return nil, err
		}
	}

	result := &domain.PredictionResult{Predictions: labels, Drift: event}
	s.logRequest(matrix, result)
	return result, nil
}

func (s *InferenceService) dispatchAlert(ctx context.Context, event domain.DriftEvent) error {
	if !s.alerts.IsConfigured() {
		return nil
	}

	alert := ports.DriftAlert{
		Score:         event.DriftScore,
		ViolatedRules: event.ViolatedRules,
		Timestamp:     time.Now().UTC(),
	}

	if s.enforced {
		if err := s.alerts.SendDriftAlert(ctx, alert); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrDispatch, err)
		}
		return nil
	}

	// Best-effort: never hold up the response path. The client bounds the
	// call with its own timeout.
	go func() {
		if err := s.alerts.SendDriftAlert(context.Background(), alert); err != nil {
			log.WithError(err).Warn("drift alert dispatch failed")
		}
	}()
	return nil
}

// logRequest emits one structured record per completed request with a
// bounded-size input and prediction sample. Logging must never fail the
// request, so there is no error path here.
func (s *InferenceService) logRequest(matrix *domain.CanonicalMatrix, result *domain.PredictionResult) {
	preview := result.Predictions
	if len(preview) > predictionPreviewCap {
		preview = preview[:predictionPreviewCap]
	}

	var sample []float64
	if len(matrix.Rows) > 0 {
		sample = matrix.Rows[0]
	}

	log.WithFields(log.Fields{
		"event":              "prediction",
		"rows":               len(matrix.Rows),
		"input_sample":       sample,
		"predictions_sample": preview,
		"drift_detected":     result.Drift.DriftDetected,
		"drift_score":        result.Drift.DriftScore,
		"violated_rules":     result.Drift.ViolatedRules,
	}).Info("prediction served")
}
