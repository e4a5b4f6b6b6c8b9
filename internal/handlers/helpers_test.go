package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pawradius/backend/internal/models"
	"github.com/pawradius/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrAlertNotFound, http.StatusNotFound},
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrNotOwner, http.StatusForbidden},
		{services.ErrAlertInactive, http.StatusConflict},
		{services.ErrAlreadyReported, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		httpErr, ok := mapServiceError(tc.err).(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, tc.status, httpErr.Code, "for %v", tc.err)
	}
}

func TestAuthenticatedUserID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := authenticatedUserID(c)
	assert.Error(t, err)

	c.Set("user", &models.JwtCustomClaims{UserID: 42})
	id, err := authenticatedUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestAlertIDParam(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("17")

	id, err := alertIDParam(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(17), id)

	c.SetParamValues("not-a-number")
	_, err = alertIDParam(c)
	assert.Error(t, err)
}
