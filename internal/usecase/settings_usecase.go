package usecase

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// UpdateSettingsInput carries only the fields the client sent; nil pointers
// leave the stored value untouched.
type UpdateSettingsInput struct {
	PushNotifications        *bool `json:"push_notifications"`
	EmailNotifications       *bool `json:"email_notifications"`
	MessageNotifications     *bool `json:"message_notifications"`
	ApplicationNotifications *bool `json:"application_notifications"`
	PaymentNotifications     *bool `json:"payment_notifications"`

	ProfileVisibility *string   `json:"profile_visibility" validate:"omitempty,oneof=public contacts private"`
	ShowContact       *bool     `json:"show_contact"`
	ShowLocation      *bool     `json:"show_location"`
	ShowEarnings      *bool     `json:"show_earnings"`
	ShowPortfolio     *bool     `json:"show_portfolio"`
	VisibleCategories *[]string `json:"visible_categories"`

	Language *string `json:"language"`
	Theme    *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Currency *string `json:"currency"`
	Timezone *string `json:"timezone"`
}

// Get returns the user's settings, falling back to defaults when no
// document exists yet.
func (uc *SettingsUseCase) Get(ctx context.Context, userID string) (*entity.UserSettings, error) {
	settings, err := uc.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return entity.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

// Update merges the provided fields into the stored settings and persists
// the result.
func (uc *SettingsUseCase) Update(ctx context.Context, userID string, input UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.PushNotifications != nil {
		settings.PushNotifications = *input.PushNotifications
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.MessageNotifications != nil {
		settings.MessageNotifications = *input.MessageNotifications
	}
	if input.ApplicationNotifications != nil {
		settings.ApplicationNotifications = *input.ApplicationNotifications
	}
	if input.PaymentNotifications != nil {
		settings.PaymentNotifications = *input.PaymentNotifications
	}
	if input.ProfileVisibility != nil {
		settings.ProfileVisibility = *input.ProfileVisibility
	}
	if input.ShowContact != nil {
		settings.ShowContact = *input.ShowContact
	}
	if input.ShowLocation != nil {
		settings.ShowLocation = *input.ShowLocation
	}
	if input.ShowEarnings != nil {
		settings.ShowEarnings = *input.ShowEarnings
	}
	if input.ShowPortfolio != nil {
		settings.ShowPortfolio = *input.ShowPortfolio
	}
	if input.VisibleCategories != nil {
		settings.VisibleCategories = *input.VisibleCategories
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}

	if err := uc.settingsRepo.Set(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
