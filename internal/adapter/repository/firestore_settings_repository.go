package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type firestoreSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreSettingsRepository(client *firestore.Client) repository.SettingsRepository {
	return &firestoreSettingsRepository{
		client: client,
	}
}

func (r *firestoreSettingsRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserSettings, error) {
	doc, err := r.client.Collection("userSettings").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Settings", err)
		}
		return nil, errors.Internal("Failed to get settings", err)
	}

	var settings entity.UserSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse settings data", err)
	}

	return &settings, nil
}

func (r *firestoreSettingsRepository) Set(ctx context.Context, settings *entity.UserSettings) error {
	if settings.ID == "" {
		settings.ID = settings.UserID
	}
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = time.Now()
	}
	settings.UpdatedAt = time.Now()

	_, err := r.client.Collection("userSettings").Doc(settings.ID).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to save settings", err)
	}

	return nil
}
