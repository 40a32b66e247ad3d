package services

import (
	"math"
	"sort"

	"model-inference-service/internal/core/domain"
)

const (
	// driftThreshold is the fixed statistical decision boundary on the
	// worst-feature |z|.
	driftThreshold = 5.0

	// zScoreSentinel replaces an infinite z when the baseline std is zero
	// and the batch deviates at all.
	zScoreSentinel = 1e12
)

// DriftDetector scores request batches against the training-time baseline
// and, when configured, checks hard expectation rules on raw values. Both
// inputs are immutable after construction.
type DriftDetector struct {
	baseline       *domain.BaselineStatistics
	rulesByFeature map[string][]domain.ExpectationRule
	featureIndex   map[string]int
}

func NewDriftDetector(baseline *domain.BaselineStatistics, rules []domain.ExpectationRule) *DriftDetector {
	byFeature := make(map[string][]domain.ExpectationRule)
	for _, r := range rules {
		byFeature[r.Feature] = append(byFeature[r.Feature], r)
	}
	index := make(map[string]int, len(baseline.Features))
	for i, f := range baseline.Features {
		index[f.Name] = i
	}
	return &DriftDetector{
		baseline:       baseline,
		rulesByFeature: byFeature,
		featureIndex:   index,
	}
}

// Evaluate produces the drift verdict for one canonical batch. The reported
// score is always the statistical component (max |z| over features); rule
// violations force detection independently of the score.
func (d *DriftDetector) Evaluate(m *domain.CanonicalMatrix) domain.DriftEvent {
	score := d.statisticalScore(m)
	violated := d.ruleViolations(m)

	return domain.DriftEvent{
		DriftDetected: score > driftThreshold || len(violated) > 0,
		DriftScore:    score,
		ViolatedRules: violated,
	}
}

func (d *DriftDetector) statisticalScore(m *domain.CanonicalMatrix) float64 {
	means := m.ColumnMeans()
	maxZ := 0.0
	for i, f := range d.baseline.Features {
		var z float64
		diff := means[i] - f.Mean
		if f.Std == 0 {
			if diff != 0 {
				z = zScoreSentinel
			}
		} else {
			z = math.Abs(diff / f.Std)
		}
		if z > maxZ {
			maxZ = z
		}
	}
	return maxZ
}

func (d *DriftDetector) ruleViolations(m *domain.CanonicalMatrix) []string {
	if len(d.rulesByFeature) == 0 {
		return nil
	}

	violated := make(map[string]struct{})
	for name, rules := range d.rulesByFeature {
		col, ok := d.featureIndex[name]
		if !ok {
			continue
		}
		for _, row := range m.Rows {
			v := row[col]
			for _, rule := range rules {
				if ruleViolated(rule, v) {
					violated[name] = struct{}{}
				}
			}
		}
	}
	if len(violated) == 0 {
		return nil
	}

	names := make([]string, 0, len(violated))
	for name := range violated {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ruleViolated(rule domain.ExpectationRule, v float64) bool {
	if rule.Min != nil && v < *rule.Min {
		return true
	}
	if rule.Max != nil && v > *rule.Max {
		return true
	}
	if rule.Type == "int" && math.Trunc(v) != v {
		return true
	}
	return false
}
