package controller

import (
	"net/http"
	"time"

	"licitaya-api/internal/service"

	"github.com/labstack/echo"
)

type diagnosticRoutesHandler struct {
	diagnosticService service.Diagnostics
}

func newDiagnosticRoutesHandler(handler *echo.Echo, api *echo.Group, services *service.Services) *diagnosticRoutesHandler {
	h := &diagnosticRoutesHandler{services.Diagnostics}

	handler.GET("/", h.Root)
	handler.GET("/health", h.Health)
	api.GET("/health", h.Health)

	return h
}

type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// /
func (h *diagnosticRoutesHandler) Root(c echo.Context) error {
	if e := c.JSON(http.StatusOK, messageResponse{"LicitaYa API is running"}); e != nil {
		return e
	}

	return nil
}

// /health and /api/health
func (h *diagnosticRoutesHandler) Health(c echo.Context) error {
	response := healthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.diagnosticService.Ping(); err != nil {
		response.Status = "unhealthy"
		response.Database = "disconnected"
	}

	if e := c.JSON(http.StatusOK, response); e != nil {
		return e
	}

	return nil
}
