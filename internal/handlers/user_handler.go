package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/repositories"
	"github.com/pawradius/backend/internal/services"
)

// UserHandler handles the recipient bookkeeping the fan-out depends on:
// push tokens, last known location, and the caller's entitlement
type UserHandler struct {
	userRepository     repositories.UserRepository
	entitlementService *services.EntitlementService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, entitlementService *services.EntitlementService) *UserHandler {
	return &UserHandler{
		userRepository:     userRepo,
		entitlementService: entitlementService,
	}
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.PUT("/users/me/push-token", h.UpdatePushToken)
	g.PUT("/users/me/location", h.UpdateLocation)
	g.GET("/users/me/entitlement", h.GetEntitlement)
}

// UpdatePushToken registers the caller's device push token
func (h *UserHandler) UpdatePushToken(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	req := new(models.UpdatePushTokenRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userRepository.UpdatePushToken(userID, req.PushToken); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateLocation records the caller's last known coordinates
func (h *UserHandler) UpdateLocation(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	req := new(models.UpdateLocationRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userRepository.UpdateLocation(userID, req.Latitude, req.Longitude); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetEntitlement returns the caller's effective tier and caps, for the
// client-side soft clamp and upsell prompt. The server re-validates on create
// regardless of what the client shows.
func (h *UserHandler) GetEntitlement(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	ent, err := h.entitlementService.Resolve(userID)
	if err != nil {
		return mapServiceError(err)
	}
	caps := services.ResolveCaps(ent.EffectiveTier, ent.OverrideActive)

	return c.JSON(http.StatusOK, echo.Map{
		"effective_tier":  ent.EffectiveTier,
		"override_active": ent.OverrideActive,
		"caps":            caps,
	})
}
