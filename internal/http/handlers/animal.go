package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type AnimalHandler struct {
	animals services.AnimalService
}

func NewAnimalHandler(animals services.AnimalService) *AnimalHandler {
	return &AnimalHandler{animals: animals}
}

// GET /api/animals?start=1&end=50
func (h *AnimalHandler) List(c *gin.Context) {
	start, err := intQuery(c, "start", services.DefaultAnimalStart)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	end, err := intQuery(c, "end", services.DefaultAnimalEnd)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	page, err := h.animals.List(c.Request.Context(), start, end)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, page)
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", services.ErrInvalidRequest, name)
	}
	return n, nil
}
