package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(middleware.AuthRateLimit())

	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	auth.PUT("/password", authHandler.ChangePassword, authMiddleware.Authenticate)
	auth.DELETE("/account", authHandler.DeleteAccount, authMiddleware.Authenticate)
}
