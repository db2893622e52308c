package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type SearchHandler struct {
	search services.SearchService
}

func NewSearchHandler(search services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// GET /api/search?q=강남구 동물병원
func (h *SearchHandler) Search(c *gin.Context) {
	resp, err := h.search.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, resp)
}
