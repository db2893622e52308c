package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type StatsHandler struct {
	stats services.StatsService
}

func NewStatsHandler(stats services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /api/stats/pet-names?gu=송파구
func (h *StatsHandler) PetNames(c *gin.Context) {
	names, err := h.stats.PetNames(c.Request.Context(), c.Query("gu"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, names)
}
