package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"model-inference-service/internal/adapters/primary/http/dto"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": codeMalformedBody})
		return
	}

	result, err := h.inferenceSvc.Predict(c.Request.Context(), req.ToDomain())
	if err != nil {
		log.WithError(err).Debug("predict request failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(result))
}
