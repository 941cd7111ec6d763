package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupJobRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	jobHandler := handler.GetJobHandler()
	applicationHandler := handler.GetApplicationHandler()

	jobs := e.Group("/v1/jobs")

	jobs.GET("", jobHandler.ListJobs)
	jobs.GET("/:id", jobHandler.GetJob)

	jobs.POST("", jobHandler.CreateJob, authMiddleware.Authenticate)
	jobs.GET("/mine", jobHandler.ListMyJobs, authMiddleware.Authenticate)
	jobs.PATCH("/:id/status", jobHandler.UpdateJobStatus, authMiddleware.Authenticate)
	jobs.POST("/:id/cancel", jobHandler.CancelJob, authMiddleware.Authenticate)
	jobs.DELETE("/:id", jobHandler.DeleteJob, authMiddleware.Authenticate)
	jobs.POST("/:id/rating", jobHandler.RateJob, authMiddleware.Authenticate)

	jobs.POST("/:id/applications", applicationHandler.Apply, authMiddleware.Authenticate)
	jobs.GET("/:id/applications", applicationHandler.ListByJob, authMiddleware.Authenticate)
}
