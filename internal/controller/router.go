package controller

import (
	"licitaya-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

// Register endpoint throttling: enough for a user retrying a lost email,
// not enough to spam the mail queue.
const (
	registerRatePerSecond = 1
	registerRateBurst     = 5
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, allowOrigins []string) {
	handler.Use(RequestLogger())
	handler.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"*"},
	}))

	validate := validator.New(validator.WithRequiredStructEnabled())

	api := handler.Group("/api")
	newDiagnosticRoutesHandler(handler, api, services)
	newTenderRoutesHandler(api, services, validate)
	newUserRoutesHandler(api, services, validate, NewIPRateLimiter(registerRatePerSecond, registerRateBurst))
}
