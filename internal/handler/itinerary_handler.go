package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/tripsheet-backend-go/internal/service"
	"github.com/jengzang/tripsheet-backend-go/pkg/response"
)

// ItineraryHandler handles HTTP requests for the parsed itinerary
type ItineraryHandler struct {
	service *service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(svc *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{service: svc}
}

// Get returns the itinerary and trip metadata
// GET /api/v1/itinerary?refresh=1
func (h *ItineraryHandler) Get(c *gin.Context) {
	refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"

	result, err := h.service.Load(c.Request.Context(), refresh)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result)
}

// Stats returns the trip statistics panel data
// GET /api/v1/itinerary/stats
func (h *ItineraryHandler) Stats(c *gin.Context) {
	result, err := h.service.Load(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result.Stats())
}

// Annotations returns per-event map locations, links and cleaned text
// GET /api/v1/itinerary/annotations
func (h *ItineraryHandler) Annotations(c *gin.Context) {
	result, err := h.service.Load(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, service.Annotations(result))
}

func (h *ItineraryHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoSheetURL):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidSheetURL):
		response.BadRequest(c, err.Error())
	default:
		response.BadGateway(c, err.Error())
	}
}
