package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupSettingsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	settingsHandler := handler.GetSettingsHandler()

	settings := e.Group("/v1/settings")
	settings.Use(authMiddleware.Authenticate)

	settings.GET("", settingsHandler.Get)
	settings.PATCH("", settingsHandler.Update)
}
