package dto

import (
	"encoding/json"
	"errors"

	"model-inference-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// PredictRequest is the /predict body. Each instance is either an ordered
// numeric array or a feature-name map; the union is resolved once here so
// downstream code never branches on shape again.
type PredictRequest struct {
	Instances []Instance `json:"instances"`
}

// Instance holds one raw prediction input in either form.
type Instance struct {
	vector []any
	fields map[string]any
}

var errBadInstanceShape = errors.New("instance must be an array or an object")

func (i *Instance) UnmarshalJSON(data []byte) error {
	trimmed := firstNonSpace(data)
	switch trimmed {
	case '[':
		return json.Unmarshal(data, &i.vector)
	case '{':
		return json.Unmarshal(data, &i.fields)
	default:
		return errBadInstanceShape
	}
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// ToDomain converts the raw instances for the validator.
func (r *PredictRequest) ToDomain() []domain.Instance {
	instances := make([]domain.Instance, len(r.Instances))
	for i, inst := range r.Instances {
		instances[i] = domain.Instance{Vector: inst.vector, Fields: inst.fields}
	}
	return instances
}

// ============================================================================
// Response DTOs
// ============================================================================

// PredictResponse is the /predict response body.
type PredictResponse struct {
	Predictions   []string `json:"predictions"`
	DriftDetected bool     `json:"drift_detected"`
	DriftScore    float64  `json:"drift_score"`
	ViolatedRules []string `json:"violated_rules,omitempty"`
}

// ToPredictResponse converts a domain PredictionResult to the response DTO.
func ToPredictResponse(result *domain.PredictionResult) PredictResponse {
	return PredictResponse{
		Predictions:   result.Predictions,
		DriftDetected: result.Drift.DriftDetected,
		DriftScore:    result.Drift.DriftScore,
		ViolatedRules: result.Drift.ViolatedRules,
	}
}
