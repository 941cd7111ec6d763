package repository

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.Job, int64, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Job, int64, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Job, int64, error)
	ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*entity.Job, int64, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id string) error
}
