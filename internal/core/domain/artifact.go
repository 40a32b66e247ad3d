package domain

import "strconv"

// FeatureStats holds the per-feature baseline snapshot captured at training time.
type FeatureStats struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Count int     `json:"count"`
}

// BaselineStatistics is the reference distribution used for drift scoring.
// Immutable after load.
type BaselineStatistics struct {
	Features []FeatureStats `json:"features"`
}

// FeatureNames returns the baseline feature names in declared order.
func (b *BaselineStatistics) FeatureNames() []string {
	names := make([]string, len(b.Features))
	for i, f := range b.Features {
		names[i] = f.Name
	}
	return names
}

// ExpectationRule is a hard constraint on a feature's raw value, independent
// of statistical drift. Min/Max are inclusive; nil means unbounded on that
// side. Type is "float" (any numeric) or "int" (whole numbers only).
type ExpectationRule struct {
	Feature string   `json:"feature"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Type    string   `json:"type,omitempty"`
}

// Classifier predicts a class index for one canonical feature row.
type Classifier interface {
	PredictRow(row []float64) (int, error)
}

// ModelArtifact is the trained classifier plus the ordered feature list it
// expects. Loaded once at startup and shared read-only for the process
// lifetime.
type ModelArtifact struct {
	Type         string
	FeatureNames []string
	Classes      []string
	Classifier   Classifier
}

// FeatureCount returns the number of features the model expects.
func (m *ModelArtifact) FeatureCount() int {
	return len(m.FeatureNames)
}

// Label maps a class index to its label. Falls back to the stringified index
// when the artifact carries no class names.
func (m *ModelArtifact) Label(class int) string {
	if class >= 0 && class < len(m.Classes) {
		return m.Classes[class]
	}
	return strconv.Itoa(class)
}
