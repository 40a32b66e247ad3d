package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"model-inference-service/internal/core/domain"
)

// Machine-readable error subcodes returned next to the message.
const (
	codeMalformedBody   = "malformed_body"
	codeEmptyInstances  = "empty_instances"
	codeShapeMismatch   = "shape_mismatch"
	codeMissingFeature  = "missing_feature"
	codeNonNumericValue = "non_numeric_value"
	codeInference       = "inference_error"
	codeDispatchFailed  = "dispatch_failed"
	codeInternal        = "internal_error"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyInstances):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeEmptyInstances})

	case errors.Is(err, domain.ErrShapeMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeShapeMismatch})

	case errors.Is(err, domain.ErrMissingFeature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeMissingFeature})

	case errors.Is(err, domain.ErrNonNumericValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeNonNumericValue})

	case errors.Is(err, domain.ErrInference):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": codeInference})

	case errors.Is(err, domain.ErrDispatch):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "code": codeDispatchFailed})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": codeInternal})
	}
}
