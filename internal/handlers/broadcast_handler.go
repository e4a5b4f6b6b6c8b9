package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/services"
)

// BroadcastHandler handles HTTP requests for broadcast alerts
type BroadcastHandler struct {
	broadcastService *services.BroadcastService
	dispatchService  *services.DispatchService
}

// NewBroadcastHandler creates a new BroadcastHandler
func NewBroadcastHandler(broadcastService *services.BroadcastService, dispatchService *services.DispatchService) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastService: broadcastService,
		dispatchService:  dispatchService,
	}
}

// RegisterBroadcastRoutes registers broadcast-related routes
func (h *BroadcastHandler) RegisterBroadcastRoutes(g *echo.Group) {
	g.POST("/broadcasts", h.CreateBroadcast)
	g.GET("/broadcasts", h.ListBroadcasts)
	g.GET("/broadcasts/mine", h.ListMyBroadcasts)
	g.GET("/broadcasts/:id", h.GetBroadcast)
	g.PATCH("/broadcasts/:id", h.UpdateBroadcast)
	g.DELETE("/broadcasts/:id", h.RemoveBroadcast)
}

// CreateBroadcast publishes a new alert and kicks off the notification
// fan-out asynchronously. Delivery is not part of the creation flow; its
// outcome lands in the dispatch audit records only.
func (h *BroadcastHandler) CreateBroadcast(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	req := new(models.CreateBroadcastRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.broadcastService.Create(c.Request().Context(), userID, req)
	if err != nil {
		var capErr *services.CapExceededError
		if errors.As(err, &capErr) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error":       "cap_exceeded",
				"field":       capErr.Field,
				"requested":   capErr.Requested,
				"allowed_max": capErr.AllowedMax,
				"tier":        capErr.Tier,
			})
		}
		return mapServiceError(err)
	}

	alertID := result.Alert.ID
	go func() {
		if _, err := h.dispatchService.Dispatch(context.Background(), alertID); err != nil {
			log.Printf("Async dispatch failed for alert %d: %v", alertID, err)
		}
	}()

	return c.JSON(http.StatusCreated, result)
}

// ListBroadcasts returns currently visible alerts
func (h *BroadcastHandler) ListBroadcasts(c echo.Context) error {
	limit := 50
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	alerts, err := h.broadcastService.ListActive(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alerts)
}

// ListMyBroadcasts returns the caller's alerts, active or not
func (h *BroadcastHandler) ListMyBroadcasts(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	alerts, err := h.broadcastService.ListMine(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alerts)
}

// GetBroadcast retrieves a single alert by ID
func (h *BroadcastHandler) GetBroadcast(c echo.Context) error {
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	alert, err := h.broadcastService.GetByID(alertID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, alert)
}

// UpdateBroadcast edits an alert's title/description (owner only)
func (h *BroadcastHandler) UpdateBroadcast(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	req := new(models.UpdateBroadcastRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	alert, err := h.broadcastService.Update(alertID, userID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, alert)
}

// RemoveBroadcast deactivates an alert (owner only, idempotent)
func (h *BroadcastHandler) RemoveBroadcast(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	alertID, err := alertIDParam(c)
	if err != nil {
		return err
	}

	if err := h.broadcastService.Remove(alertID, userID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
