package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	uid := getUserIDFromContext(c)
	p := utils.GetPaginationParams(c)

	notifications, total, err := h.notificationUseCase.List(c.Request().Context(), uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, p.Page, p.PageSize)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid := getUserIDFromContext(c)

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Notification marked as read",
	})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	uid := getUserIDFromContext(c)

	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	uid := getUserIDFromContext(c)

	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{
		"unread": count,
	})
}
