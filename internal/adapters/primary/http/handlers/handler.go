package handlers

import (
	"github.com/gin-gonic/gin"

	"model-inference-service/internal/adapters/secondary/artifactstore"
	"model-inference-service/internal/core/services"
	"model-inference-service/internal/metrics"
)

type Handler struct {
	inferenceSvc *services.InferenceService
	store        *artifactstore.Store
	registry     *metrics.Registry
}

func New(inferenceSvc *services.InferenceService, store *artifactstore.Store, registry *metrics.Registry) *Handler {
	return &Handler{
		inferenceSvc: inferenceSvc,
		store:        store,
		registry:     registry,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/predict", h.Predict)
	r.GET("/metrics", gin.WrapH(h.registry.Handler()))
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
}
