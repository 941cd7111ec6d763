package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupJobRouter(e, authMiddleware)
	SetupApplicationRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupSettingsRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
