package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GraphPinger probes the graph endpoint.
type GraphPinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	graph GraphPinger
}

func NewHealthHandler(graph GraphPinger) *HealthHandler { return &HealthHandler{graph: graph} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /readyz
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.graph == nil {
		c.JSON(http.StatusOK, gin.H{"graph": "skipped"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.graph.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"graph": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"graph": "ok"})
}
