package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("/upload", fileHandler.UploadFile)
	files.POST("/job-image", fileHandler.UploadJobImage)
	files.POST("/profile-photo", fileHandler.UploadProfilePhoto)
	files.DELETE("", fileHandler.DeleteFile)
}
