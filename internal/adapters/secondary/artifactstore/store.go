package artifactstore

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"model-inference-service/internal/core/domain"
)

// Store holds the immutable artifacts loaded at startup: the trained model,
// the baseline statistics, and the optional expectation rule set. Nothing is
// mutated after Load returns.
type Store struct {
	model    *domain.ModelArtifact
	baseline *domain.BaselineStatistics
	rules    []domain.ExpectationRule
	ready    bool
}

// NewStore builds a store from already-materialized artifacts. Used by tests
// and by Load once decoding succeeds.
func NewStore(model *domain.ModelArtifact, baseline *domain.BaselineStatistics, rules []domain.ExpectationRule) *Store {
	return &Store{model: model, baseline: baseline, rules: rules, ready: true}
}

// Load reads and validates all artifacts from disk. Model and baseline are
// mandatory; a missing expectations file just disables rule checking. Any
// failure wraps domain.ErrArtifactLoad and must abort startup.
func Load(modelPath, baselinePath, expectationsPath string) (*Store, error) {
	model, err := loadModel(modelPath)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":     modelPath,
		"type":     model.Type,
		"features": len(model.FeatureNames),
	}).Info("model artifact loaded")

	baseline, err := loadBaseline(baselinePath)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":     baselinePath,
		"features": len(baseline.Features),
	}).Info("baseline statistics loaded")

	if err := checkFeatureAgreement(model, baseline); err != nil {
		return nil, err
	}

	rules, err := loadExpectations(expectationsPath)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		log.Info("expectation rules not configured; rule checking disabled")
	} else {
		log.WithField("rules", len(rules)).Info("expectation rules loaded")
	}

	return NewStore(model, baseline, rules), nil
}

func (s *Store) Model() *domain.ModelArtifact         { return s.model }
func (s *Store) Baseline() *domain.BaselineStatistics { return s.baseline }
func (s *Store) Rules() []domain.ExpectationRule      { return s.rules }

// Ready reports whether all mandatory artifacts loaded successfully.
func (s *Store) Ready() bool { return s.ready }

type modelFile struct {
	ModelType    string            `json:"model_type"`
	FeatureNames []string          `json:"feature_names"`
	Classes      []string          `json:"classes"`
	Nodes        []domain.TreeNode `json:"nodes"`
	Weights      [][]float64       `json:"weights"`
	Intercepts   []float64         `json:"intercepts"`
}

func loadModel(path string) (*domain.ModelArtifact, error) {
	raw, err := readValidated(path, modelSchema, "model")
	if err != nil {
		return nil, err
	}

	var file modelFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: decode model %s: %v", domain.ErrArtifactLoad, path, err)
	}

	classifier, err := buildClassifier(&file)
	if err != nil {
		return nil, fmt.Errorf("%w: model %s: %v", domain.ErrArtifactLoad, path, err)
	}

	return &domain.ModelArtifact{
		Type:         file.ModelType,
		FeatureNames: file.FeatureNames,
		Classes:      file.Classes,
		Classifier:   classifier,
	}, nil
}

func buildClassifier(file *modelFile) (domain.Classifier, error) {
	switch file.ModelType {
	case domain.ModelTypeDecisionTree:
		if len(file.Nodes) == 0 {
			return nil, fmt.Errorf("decision tree has no nodes")
		}
		return &domain.DecisionTree{Nodes: file.Nodes}, nil

	case domain.ModelTypeLinear:
		if len(file.Weights) == 0 {
			return nil, fmt.Errorf("linear model has no weights")
		}
		if len(file.Weights) != len(file.Intercepts) {
			return nil, fmt.Errorf("linear model has %d weight rows but %d intercepts",
				len(file.Weights), len(file.Intercepts))
		}
		for i, w := range file.Weights {
			if len(w) != len(file.FeatureNames) {
				return nil, fmt.Errorf("linear model class %d has %d weights, expected %d",
					i, len(w), len(file.FeatureNames))
			}
		}
		return &domain.LinearModel{Weights: file.Weights, Intercepts: file.Intercepts}, nil

	default:
		return nil, fmt.Errorf("unsupported model type %q", file.ModelType)
	}
}

func loadBaseline(path string) (*domain.BaselineStatistics, error) {
	raw, err := readValidated(path, baselineSchema, "baseline")
	if err != nil {
		return nil, err
	}

	var baseline domain.BaselineStatistics
	if err := json.Unmarshal(raw, &baseline); err != nil {
		return nil, fmt.Errorf("%w: decode baseline %s: %v", domain.ErrArtifactLoad, path, err)
	}
	return &baseline, nil
}

func loadExpectations(path string) ([]domain.ExpectationRule, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	raw, err := readValidated(path, expectationsSchema, "expectations")
	if err != nil {
		return nil, err
	}

	var file struct {
		Rules []domain.ExpectationRule `json:"rules"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: decode expectations %s: %v", domain.ErrArtifactLoad, path, err)
	}
	return file.Rules, nil
}

func checkFeatureAgreement(model *domain.ModelArtifact, baseline *domain.BaselineStatistics) error {
	baseNames := baseline.FeatureNames()
	if len(baseNames) != len(model.FeatureNames) {
		return fmt.Errorf("%w: %w: model has %d features, baseline has %d",
			domain.ErrArtifactLoad, domain.ErrFeatureMismatch, len(model.FeatureNames), len(baseNames))
	}
	for i, name := range model.FeatureNames {
		if baseNames[i] != name {
			return fmt.Errorf("%w: %w: position %d is %q in model, %q in baseline",
				domain.ErrArtifactLoad, domain.ErrFeatureMismatch, i, name, baseNames[i])
		}
	}
	return nil
}

func readValidated(path, schema, kind string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", domain.ErrArtifactLoad, kind, path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: validate %s %s: %v", domain.ErrArtifactLoad, kind, path, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s %s failed schema validation: %v",
			domain.ErrArtifactLoad, kind, path, result.Errors())
	}
	return raw, nil
}
