package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz is pure liveness: 200 as soon as the process serves HTTP.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports ready only after the artifact store loaded all mandatory
// artifacts.
func (h *Handler) Readyz(c *gin.Context) {
	if !h.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
