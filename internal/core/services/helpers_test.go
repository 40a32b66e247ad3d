package services

import (
	"model-inference-service/internal/core/domain"
)

// irisFeatures is the feature order shared by the test model and baseline.
var irisFeatures = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}

// testModel returns a small deterministic tree: petal_length <= 2.5 is
// setosa, anything else versicolor.
func testModel() *domain.ModelArtifact {
	return &domain.ModelArtifact{
		Type:         domain.ModelTypeDecisionTree,
		FeatureNames: irisFeatures,
		Classes:      []string{"setosa", "versicolor"},
		Classifier: &domain.DecisionTree{
			Nodes: []domain.TreeNode{
				{FeatureIdx: 2, Threshold: 2.5, Left: 1, Right: 2},
				{Leaf: true, Class: 0},
				{Leaf: true, Class: 1},
			},
		},
	}
}

// testBaseline mirrors the worked example: means [5.0 3.0 3.5 1.0],
// stds [0.8 0.4 1.7 0.7].
func testBaseline() *domain.BaselineStatistics {
	return &domain.BaselineStatistics{
		Features: []domain.FeatureStats{
			{Name: "sepal_length", Mean: 5.0, Std: 0.8, Count: 120},
			{Name: "sepal_width", Mean: 3.0, Std: 0.4, Count: 120},
			{Name: "petal_length", Mean: 3.5, Std: 1.7, Count: 120},
			{Name: "petal_width", Mean: 1.0, Std: 0.7, Count: 120},
		},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
