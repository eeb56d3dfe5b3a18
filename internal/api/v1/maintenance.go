package v1

import (
	"net/http"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/service"
	"github.com/garagio/garagio/internal/types"
	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	service service.MaintenanceService
	log     *logger.Logger
}

func NewMaintenanceHandler(service service.MaintenanceService, log *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
		log:     log,
	}
}

func (h *MaintenanceHandler) CreateMaintenanceRequest(c *gin.Context) {
	var req dto.CreateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateMaintenanceRequest(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *MaintenanceHandler) GetMaintenanceRequest(c *gin.Context) {
	resp, err := h.service.GetMaintenanceRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MaintenanceHandler) ListMaintenanceRequests(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListMaintenanceRequests(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MaintenanceHandler) UpdateMaintenanceRequest(c *gin.Context) {
	var req dto.UpdateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateMaintenanceRequest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MaintenanceHandler) DeleteMaintenanceRequest(c *gin.Context) {
	if err := h.service.DeleteMaintenanceRequest(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "maintenance request deleted successfully"})
}
