package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/repositories"
	"github.com/pawradius/backend/internal/services"
)

// DispatchHandler exposes the notification fan-out for ops/debugging:
// synchronous re-dispatch and the audit trail of past attempts
type DispatchHandler struct {
	dispatchService  *services.DispatchService
	recordRepository repositories.DispatchRecordRepository
}

// NewDispatchHandler creates a new DispatchHandler
func NewDispatchHandler(dispatchService *services.DispatchService, recordRepo repositories.DispatchRecordRepository) *DispatchHandler {
	return &DispatchHandler{
		dispatchService:  dispatchService,
		recordRepository: recordRepo,
	}
}

// RegisterDispatchRoutes registers dispatch routes
func (h *DispatchHandler) RegisterDispatchRoutes(g *echo.Group) {
	g.POST("/broadcasts/:id/dispatch", h.DispatchBroadcast)
	g.GET("/broadcasts/:id/dispatches", h.GetDispatchRecords)
}

// DispatchBroadcast runs the fan-out synchronously and returns its result
func (h *DispatchHandler) DispatchBroadcast(c echo.Context) error {
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.dispatchService.Dispatch(c.Request().Context(), alertID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetDispatchRecords returns the audit records for an alert, newest first
func (h *DispatchHandler) GetDispatchRecords(c echo.Context) error {
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	records, err := h.recordRepository.GetByAlertID(alertID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, records)
}
