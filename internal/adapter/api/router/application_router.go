package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupApplicationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	applicationHandler := handler.GetApplicationHandler()

	applications := e.Group("/v1/applications")
	applications.Use(authMiddleware.Authenticate)

	applications.GET("/mine", applicationHandler.ListMine)
	applications.POST("/:id/withdraw", applicationHandler.Withdraw)
	applications.POST("/:id/accept", applicationHandler.Accept)
	applications.POST("/:id/reject", applicationHandler.Reject)
}
