package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)

	payments.GET("/balance", paymentHandler.GetBalance)
	payments.GET("/transactions", paymentHandler.ListTransactions)

	payments.POST("/deposit", paymentHandler.Deposit, middleware.PaymentRateLimit())
	payments.POST("/withdraw", paymentHandler.Withdraw, middleware.PaymentRateLimit())
}
