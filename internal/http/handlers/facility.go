package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type FacilityHandler struct {
	facilities services.FacilityService
}

func NewFacilityHandler(facilities services.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilities: facilities}
}

// GET /api/facilities?gu=강남구
func (h *FacilityHandler) List(c *gin.Context) {
	records, err := h.facilities.ListByDistrict(c.Request.Context(), c.Query("gu"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, records)
}

// GET /api/facility/detail?id=<uri>
func (h *FacilityHandler) Detail(c *gin.Context) {
	detail, err := h.facilities.Detail(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
