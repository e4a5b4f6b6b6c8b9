package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/services"
)

// authenticatedUserID extracts the caller's user ID from the JWT claims the
// auth middleware stored in the context
func authenticatedUserID(c echo.Context) (uint, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims")
	}
	return claims.UserID, nil
}

// alertIDParam parses the :id path parameter
func alertIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid alert ID")
	}
	return uint(id), nil
}

// mapServiceError translates typed service errors into HTTP responses
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrAlertNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Alert not found")
	case errors.Is(err, services.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, "Only the alert creator may do this")
	case errors.Is(err, services.ErrAlertInactive):
		return echo.NewHTTPError(http.StatusConflict, "Alert is no longer active")
	case errors.Is(err, services.ErrAlreadyReported):
		return echo.NewHTTPError(http.StatusConflict, "Already reported")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
