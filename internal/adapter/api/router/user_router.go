package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")

	users.GET("/me", userHandler.GetProfile, authMiddleware.Authenticate)
	users.PATCH("/me", userHandler.UpdateProfile, authMiddleware.Authenticate)

	users.GET("/:id", userHandler.GetPublicProfile, authMiddleware.OptionalAuthenticate)
}
