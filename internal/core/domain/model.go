package domain

import "fmt"

// Supported model types.
const (
	ModelTypeDecisionTree = "decision_tree"
	ModelTypeLinear       = "linear"
)

// TreeNode is one node of a serialized decision tree. Leaves carry the class
// label; internal nodes split on FeatureIdx at Threshold.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	Left       int     `json:"left"`
	Right      int     `json:"right"`
	Class      int     `json:"class"`
	Leaf       bool    `json:"leaf"`
}

// DecisionTree is a flat-array decision tree classifier.
type DecisionTree struct {
	Nodes []TreeNode
}

func (t *DecisionTree) PredictRow(row []float64) (int, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("%w: empty tree", ErrInference)
	}
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Class, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(row) {
			return 0, fmt.Errorf("%w: tree references feature %d, row has %d", ErrInference, node.FeatureIdx, len(row))
		}
		if row[node.FeatureIdx] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("%w: tree child index %d out of range", ErrInference, idx)
		}
	}
}

// LinearModel scores each class as weights·row + intercept and predicts the
// argmax. A single-class model degenerates to a constant predictor.
type LinearModel struct {
	Weights    [][]float64
	Intercepts []float64
}

func (m *LinearModel) PredictRow(row []float64) (int, error) {
	if len(m.Weights) == 0 {
		return 0, fmt.Errorf("%w: linear model has no weights", ErrInference)
	}
	best := 0
	bestScore := 0.0
	for class, w := range m.Weights {
		if len(w) != len(row) {
			return 0, fmt.Errorf("%w: class %d expects %d features, row has %d", ErrInference, class, len(w), len(row))
		}
		score := m.Intercepts[class]
		for i, v := range row {
			score += w[i] * v
		}
		if class == 0 || score > bestScore {
			best = class
			bestScore = score
		}
	}
	return best, nil
}
