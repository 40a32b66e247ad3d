package services

import (
	"fmt"

	"model-inference-service/internal/core/domain"
)

// Predictor runs canonical batches through the loaded model. Pure function of
// (matrix, artifact); no side effects.
type Predictor struct {
	model *domain.ModelArtifact
}

func NewPredictor(model *domain.ModelArtifact) *Predictor {
	return &Predictor{model: model}
}

// Predict returns one label per matrix row. A shape the model rejects is a
// contract bug between validator and artifact, surfaced as ErrInference.
func (p *Predictor) Predict(m *domain.CanonicalMatrix) ([]string, error) {
	labels := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		class, err := p.model.Classifier.PredictRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		labels[i] = p.model.Label(class)
	}
	return labels, nil
}
