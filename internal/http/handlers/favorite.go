package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type FavoriteHandler struct {
	favorites services.FavoriteService
}

func NewFavoriteHandler(favorites services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	ids, err := h.favorites.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"favorites": ids})
}

type addFavoriteReq struct {
	FacilityID string `json:"facility_id"`
}

// POST /api/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req addFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, fmt.Errorf("%w: %v", services.ErrInvalidRequest, err))
		return
	}
	if err := h.favorites.Add(c.Request.Context(), req.FacilityID); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// DELETE /api/favorites?facility_id=<uri>
func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.favorites.Remove(c.Request.Context(), c.Query("facility_id")); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
