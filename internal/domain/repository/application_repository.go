package repository

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.JobApplication) error
	GetByID(ctx context.Context, id string) (*entity.JobApplication, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]*entity.JobApplication, int64, error)
	ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.JobApplication, int64, error)
	ListPendingByJob(ctx context.Context, jobID string) ([]*entity.JobApplication, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.JobApplication, error)
	Update(ctx context.Context, application *entity.JobApplication) error
}
