package usecase

import (
	"context"
	"time"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	ws "github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/websocket"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	settingsRepo     repository.SettingsRepository
	pusher           EventPusher
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	settingsRepo repository.SettingsRepository,
	pusher EventPusher,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		pusher:           pusher,
	}
}

// Notify records a notification and pushes it live if the recipient is
// connected. Recipient settings can mute a category entirely. Notification
// failures are logged, never propagated: they must not fail the operation
// that triggered them.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, notifType, title, message string, data map[string]interface{}) {
	if uc.muted(ctx, userID, notifType) {
		return
	}

	notification := &entity.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to create notification for user %s: %v", userID, err)
		return
	}

	uc.pusher.SendEventToUser(userID, ws.Event{
		Type:    ws.EventTypeNotification,
		Payload: notification,
	})
}

func (uc *NotificationUseCase) muted(ctx context.Context, userID, notifType string) bool {
	settings, err := uc.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false
	}
	if !settings.PushNotifications {
		return true
	}
	switch notifType {
	case entity.NotificationTypeMessage:
		return !settings.MessageNotifications
	case entity.NotificationTypeApplication:
		return !settings.ApplicationNotifications
	case entity.NotificationTypePayment:
		return !settings.PaymentNotifications
	}
	return false
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) error {
	return uc.notificationRepo.MarkRead(ctx, id, userID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	return uc.notificationRepo.MarkAllRead(ctx, userID)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}
