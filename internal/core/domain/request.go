package domain

// Instance is a single prediction input. Exactly one of Vector or Fields is
// set: Vector for the ordered-array form, Fields for the named-map form.
// Values are kept raw until the validator coerces them.
type Instance struct {
	Vector []any
	Fields map[string]any
}

// IsVector reports whether the instance arrived in ordered-array form.
func (i Instance) IsVector() bool {
	return i.Fields == nil
}

// CanonicalMatrix is the validated, ordered numeric form of a request batch.
// Row count equals instance count; column order follows the model's declared
// feature order.
type CanonicalMatrix struct {
	Features []string
	Rows     [][]float64
}

// ColumnMeans returns the per-feature mean across the batch.
func (m *CanonicalMatrix) ColumnMeans() []float64 {
	means := make([]float64, len(m.Features))
	if len(m.Rows) == 0 {
		return means
	}
	for _, row := range m.Rows {
		for i, v := range row {
			means[i] += v
		}
	}
	for i := range means {
		means[i] /= float64(len(m.Rows))
	}
	return means
}

// DriftEvent is the drift verdict for one request batch. DriftScore always
// reports the statistical component; ViolatedRules lists features that failed
// expectation rules, which force DriftDetected on their own.
type DriftEvent struct {
	DriftDetected bool
	DriftScore    float64
	ViolatedRules []string
}

// PredictionResult bundles the per-instance labels with the drift verdict.
type PredictionResult struct {
	Predictions []string
	Drift       DriftEvent
}
