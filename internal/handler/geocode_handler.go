package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/tripsheet-backend-go/internal/annotate"
	"github.com/jengzang/tripsheet-backend-go/internal/models"
	"github.com/jengzang/tripsheet-backend-go/internal/service"
	"github.com/jengzang/tripsheet-backend-go/pkg/response"
)

// GeocodeHandler handles HTTP requests for geocoding lookups
type GeocodeHandler struct {
	service *service.GeocodingService
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(svc *service.GeocodingService) *GeocodeHandler {
	return &GeocodeHandler{service: svc}
}

type lookupRequest struct {
	Name string `json:"name" binding:"required"`
}

type lookupResponse struct {
	Result  *models.GeoResult `json:"result"`
	MapsURL string            `json:"maps_url"`
}

// Lookup resolves a single location name
// POST /api/v1/geocode
func (h *GeocodeHandler) Lookup(c *gin.Context) {
	var req lookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	result, err := h.service.Lookup(c.Request.Context(), req.Name)
	if err != nil {
		response.BadGateway(c, err.Error())
		return
	}
	if result == nil {
		response.NotFound(c, "location not found")
		return
	}
	response.Success(c, lookupResponse{
		Result:  result,
		MapsURL: annotate.MapsSearchURL(result.Name),
	})
}

type batchRequest struct {
	Events []models.ParsedEvent `json:"events" binding:"required"`
}

// Batch resolves every event in the request that carries a location
// POST /api/v1/geocode/batch
func (h *GeocodeHandler) Batch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "events are required")
		return
	}

	result, err := h.service.BatchGeocode(c.Request.Context(), req.Events)
	if err != nil {
		response.BadGateway(c, err.Error())
		return
	}
	response.Success(c, result)
}
