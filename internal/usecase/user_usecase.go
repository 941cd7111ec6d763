package usecase

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
}

func NewUserUseCase(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

type UpdateProfileInput struct {
	Name     string
	Phone    string
	Location string
	Skills   []string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// GetPublicProfile returns another user's profile with fields stripped
// according to their privacy settings.
func (uc *UserUseCase) GetPublicProfile(ctx context.Context, viewerID, targetID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if viewerID == targetID {
		return user, nil
	}

	settings, err := uc.settingsRepo.GetByUserID(ctx, targetID)
	if err != nil {
		// No settings document means defaults apply.
		settings = entity.DefaultSettings(targetID)
	}

	if settings.ProfileVisibility == entity.ProfileVisibilityPrivate {
		return nil, errors.Forbidden("This profile is private", nil)
	}

	if !settings.ShowContact {
		user.Phone = ""
		user.Email = ""
	}
	if !settings.ShowLocation {
		user.Location = ""
	}
	if !settings.ShowEarnings {
		user.TotalEarnings = 0
	}
	if !settings.ShowPortfolio {
		user.Skills = nil
		user.CompletedJobs = 0
	}

	return user, nil
}

// UpdateProfile merge-writes the editable profile fields.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	fields := map[string]interface{}{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if input.Location != "" {
		fields["location"] = input.Location
	}
	if input.Skills != nil {
		fields["skills"] = input.Skills
	}

	if len(fields) == 0 {
		return nil, errors.BadRequest("Nothing to update", nil)
	}

	if err := uc.userRepo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, uid)
}
