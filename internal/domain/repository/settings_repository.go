package repository

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.UserSettings, error)
	Set(ctx context.Context, settings *entity.UserSettings) error
}
