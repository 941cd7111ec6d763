package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	jobHandler          *JobHandler
	applicationHandler  *ApplicationHandler
	paymentHandler      *PaymentHandler
	notificationHandler *NotificationHandler
	settingsHandler     *SettingsHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	jobUseCase *usecase.JobUseCase,
	applicationUseCase *usecase.ApplicationUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	settingsUseCase *usecase.SettingsUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	jobHandler = NewJobHandler(jobUseCase)
	applicationHandler = NewApplicationHandler(applicationUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetJobHandler() *JobHandler {
	return jobHandler
}

func GetApplicationHandler() *ApplicationHandler {
	return applicationHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}
