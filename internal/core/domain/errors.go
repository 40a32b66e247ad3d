package domain

import "errors"

// ============================================================================
// Artifact Errors (fatal at startup)
// ============================================================================

var (
	ErrArtifactLoad    = errors.New("artifact load failed")
	ErrFeatureMismatch = errors.New("model and baseline feature sets disagree")
)

// ============================================================================
// Validation Errors (client-caused)
// ============================================================================

var (
	ErrEmptyInstances  = errors.New("instances must contain at least one element")
	ErrShapeMismatch   = errors.New("instance length does not match model feature count")
	ErrMissingFeature  = errors.New("required feature missing from instance")
	ErrNonNumericValue = errors.New("feature value is not numeric")
)

// ============================================================================
// Inference Errors (server-caused)
// ============================================================================

var (
	ErrInference = errors.New("model rejected input matrix")
)

// ============================================================================
// Dispatch Errors (external-system-caused)
// ============================================================================

var (
	ErrDispatch = errors.New("drift alert dispatch failed")
)
