package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-inference-service/internal/core/domain"
)

func TestPredictor_OneLabelPerInstance(t *testing.T) {
	p := NewPredictor(testModel())

	matrix := &domain.CanonicalMatrix{
		Features: irisFeatures,
		Rows: [][]float64{
			{5.1, 3.5, 1.4, 0.2},
			{6.0, 2.9, 4.5, 1.5},
			{5.0, 3.0, 1.6, 0.4},
		},
	}

	labels, err := p.Predict(matrix)
	require.NoError(t, err)
	assert.Equal(t, []string{"setosa", "versicolor", "setosa"}, labels)
}

func TestPredictor_Deterministic(t *testing.T) {
	p := NewPredictor(testModel())

	matrix := &domain.CanonicalMatrix{
		Features: irisFeatures,
		Rows:     [][]float64{{6.0, 2.9, 4.5, 1.5}},
	}

	first, err := p.Predict(matrix)
	require.NoError(t, err)
	second, err := p.Predict(matrix)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPredictor_LinearModel(t *testing.T) {
	model := &domain.ModelArtifact{
		Type:         domain.ModelTypeLinear,
		FeatureNames: []string{"x", "y"},
		Classes:      []string{"low", "high"},
		Classifier: &domain.LinearModel{
			Weights:    [][]float64{{-1, 0}, {1, 0}},
			Intercepts: []float64{0, 0},
		},
	}
	p := NewPredictor(model)

	labels, err := p.Predict(&domain.CanonicalMatrix{
		Features: []string{"x", "y"},
		Rows:     [][]float64{{2, 0}, {-2, 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low"}, labels)
}

func TestPredictor_ShapeMismatchIsInferenceError(t *testing.T) {
	model := &domain.ModelArtifact{
		Type:         domain.ModelTypeLinear,
		FeatureNames: []string{"x", "y"},
		Classifier: &domain.LinearModel{
			Weights:    [][]float64{{1, 1}},
			Intercepts: []float64{0},
		},
	}
	p := NewPredictor(model)

	_, err := p.Predict(&domain.CanonicalMatrix{
		Features: []string{"x"},
		Rows:     [][]float64{{1}},
	})
	assert.ErrorIs(t, err, domain.ErrInference)
}

func TestPredictor_LabelFallbackWithoutClasses(t *testing.T) {
	model := testModel()
	model.Classes = nil
	p := NewPredictor(model)

	labels, err := p.Predict(&domain.CanonicalMatrix{
		Features: irisFeatures,
		Rows:     [][]float64{{5.1, 3.5, 1.4, 0.2}, {6.0, 2.9, 4.5, 1.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, labels)
}
