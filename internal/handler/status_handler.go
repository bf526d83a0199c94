package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves the welcome and status probes.
type StatusHandler struct{}

// NewStatusHandler creates a new status handler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Welcome godoc
// @Summary Welcome message
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *StatusHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Film API. Try accessing /status or /movies.",
	})
}

// Status godoc
// @Summary Service status
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /status [get]
func (h *StatusHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":      true,
		"service": "film-api",
	})
}
