package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/services"
)

// InteractionHandler handles support/report requests on alerts
type InteractionHandler struct {
	interactionService *services.InteractionService
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// RegisterInteractionRoutes registers interaction routes
func (h *InteractionHandler) RegisterInteractionRoutes(g *echo.Group) {
	g.POST("/broadcasts/:id/support", h.SupportBroadcast)
	g.POST("/broadcasts/:id/report", h.ReportBroadcast)
}

// SupportBroadcast toggles the caller's support on an alert
func (h *InteractionHandler) SupportBroadcast(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.interactionService.Support(alertID, userID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ReportBroadcast records the caller's abuse report on an alert. The response
// says whether this report tipped the alert into auto-hide.
func (h *InteractionHandler) ReportBroadcast(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.interactionService.Report(alertID, userID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
