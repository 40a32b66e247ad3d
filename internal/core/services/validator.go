package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"model-inference-service/internal/core/domain"
)

// Validator normalizes heterogeneous request instances into a canonical
// numeric matrix ordered by the model's declared feature order.
type Validator struct {
	model *domain.ModelArtifact
}

func NewValidator(model *domain.ModelArtifact) *Validator {
	return &Validator{model: model}
}

// Canonicalize resolves each instance (vector or map form) into one matrix
// row. Map instances must carry every model feature; unknown keys are
// ignored. Vector instances must match the feature count exactly.
func (v *Validator) Canonicalize(instances []domain.Instance) (*domain.CanonicalMatrix, error) {
	if len(instances) == 0 {
		return nil, domain.ErrEmptyInstances
	}

	features := v.model.FeatureNames
	rows := make([][]float64, 0, len(instances))
	for idx, inst := range instances {
		var (
			row []float64
			err error
		)
		if inst.IsVector() {
			row, err = v.vectorRow(inst.Vector)
		} else {
			row, err = v.mapRow(inst.Fields)
		}
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", idx, err)
		}
		rows = append(rows, row)
	}

	return &domain.CanonicalMatrix{Features: features, Rows: rows}, nil
}

func (v *Validator) vectorRow(values []any) ([]float64, error) {
	if len(values) != v.model.FeatureCount() {
		return nil, fmt.Errorf("%w: got %d values, model expects %d",
			domain.ErrShapeMismatch, len(values), v.model.FeatureCount())
	}
	row := make([]float64, len(values))
	for i, raw := range values {
		num, err := coerceNumeric(raw)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		row[i] = num
	}
	return row, nil
}

func (v *Validator) mapRow(fields map[string]any) ([]float64, error) {
	row := make([]float64, v.model.FeatureCount())
	for i, name := range v.model.FeatureNames {
		raw, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingFeature, name)
		}
		num, err := coerceNumeric(raw)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", name, err)
		}
		row[i] = num
	}
	return row, nil
}

func coerceNumeric(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrNonNumericValue, v.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrNonNumericValue, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T", domain.ErrNonNumericValue, raw)
	}
}
