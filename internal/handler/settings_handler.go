package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/tripsheet-backend-go/internal/service"
	"github.com/jengzang/tripsheet-backend-go/pkg/response"
)

// SettingsHandler handles HTTP requests for the sheet configuration
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Get returns the current sheet configuration
// GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, settings)
}

type updateSettingsRequest struct {
	SheetURL  string `json:"sheet_url" binding:"required"`
	TripTitle string `json:"trip_title"`
}

// Update validates and stores a new sheet URL and title override
// PUT /api/v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "sheet_url is required")
		return
	}

	settings, err := h.service.Update(req.SheetURL, req.TripTitle)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSheetURL) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, settings)
}
