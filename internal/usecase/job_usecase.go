package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type JobUseCase struct {
	jobRepo        repository.JobRepository
	userRepo       repository.UserRepository
	paymentUc      *PaymentUseCase
	notificationUc *NotificationUseCase
}

func NewJobUseCase(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	paymentUc *PaymentUseCase,
	notificationUc *NotificationUseCase,
) *JobUseCase {
	return &JobUseCase{
		jobRepo:        jobRepo,
		userRepo:       userRepo,
		paymentUc:      paymentUc,
		notificationUc: notificationUc,
	}
}

type CreateJobInput struct {
	Title        string
	Description  string
	Category     string
	Location     string
	Price        float64
	PriceType    string
	Requirements []string
	ImageURLs    []string
}

type UpdateJobStatusInput struct {
	Status     string
	WorkerID   string
	WorkerName string
}

func (uc *JobUseCase) CreateJob(ctx context.Context, ownerID string, input CreateJobInput) (*entity.Job, error) {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	job := &entity.Job{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		Price:        input.Price,
		PriceType:    input.PriceType,
		OwnerID:      ownerID,
		EmployerName: owner.Name,
		Status:       entity.JobStatusActive,
		Requirements: input.Requirements,
		ImageURLs:    input.ImageURLs,
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ListActiveJobs degrades to an empty result when the query fails; browse
// screens render an empty feed rather than an error.
func (uc *JobUseCase) ListActiveJobs(ctx context.Context, limit, offset int) ([]*entity.Job, int64) {
	jobs, total, err := uc.jobRepo.ListActive(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list active jobs: %v", err)
		return []*entity.Job{}, 0
	}
	if jobs == nil {
		jobs = []*entity.Job{}
	}
	return jobs, total
}

func (uc *JobUseCase) ListJobsByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Job, int64) {
	jobs, total, err := uc.jobRepo.ListByCategory(ctx, category, limit, offset)
	if err != nil {
		logger.Error("Failed to list jobs for category %s: %v", category, err)
		return []*entity.Job{}, 0
	}
	if jobs == nil {
		jobs = []*entity.Job{}
	}
	return jobs, total
}

// ListUserJobs returns jobs the user posted and jobs assigned to them as a
// worker, merged newest first.
func (uc *JobUseCase) ListUserJobs(ctx context.Context, userID string, limit, offset int) ([]*entity.Job, int64) {
	owned, ownedTotal, err := uc.jobRepo.ListByOwner(ctx, userID, 0, 0)
	if err != nil {
		logger.Error("Failed to list owned jobs for %s: %v", userID, err)
		owned, ownedTotal = nil, 0
	}
	assigned, assignedTotal, err := uc.jobRepo.ListByWorker(ctx, userID, 0, 0)
	if err != nil {
		logger.Error("Failed to list assigned jobs for %s: %v", userID, err)
		assigned, assignedTotal = nil, 0
	}

	merged := append([]*entity.Job{}, owned...)
	merged = append(merged, assigned...)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	total := ownedTotal + assignedTotal

	if offset > len(merged) {
		return []*entity.Job{}, total
	}
	end := len(merged)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return merged[offset:end], total
}

func (uc *JobUseCase) GetJobByID(ctx context.Context, id string) (*entity.Job, error) {
	return uc.jobRepo.GetByID(ctx, id)
}

// UpdateJobStatus moves a job along its lifecycle. Transitions are
// validated; concurrent writers that both pass the guard race with
// last-write-wins semantics. Completing a job stamps the completion time
// and settles the payment.
func (uc *JobUseCase) UpdateJobStatus(ctx context.Context, jobID, callerID string, input UpdateJobStatusInput) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.OwnerID != callerID {
		return nil, errors.Forbidden("Only the job owner can change its status", nil)
	}

	if !job.CanTransitionTo(input.Status) {
		return nil, errors.BadRequest(
			fmt.Sprintf("Cannot change job status from %s to %s", job.Status, input.Status), nil)
	}

	job.Status = input.Status
	if input.WorkerID != "" {
		job.WorkerID = input.WorkerID
		job.WorkerName = input.WorkerName
	}

	if input.Status == entity.JobStatusCompleted {
		now := time.Now()
		job.CompletedAt = &now
	}

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	if input.Status == entity.JobStatusCompleted {
		if err := uc.settleCompletedJob(ctx, job); err != nil {
			logger.Error("Failed to settle payment for job %s: %v", job.ID, err)
		}
	}

	return job, nil
}

func (uc *JobUseCase) settleCompletedJob(ctx context.Context, job *entity.Job) error {
	if err := uc.paymentUc.PayForJob(ctx, job); err != nil {
		return err
	}

	if worker, err := uc.userRepo.GetByID(ctx, job.WorkerID); err == nil {
		if err := uc.userRepo.UpdateFields(ctx, job.WorkerID, map[string]interface{}{
			"completedJobs": worker.CompletedJobs + 1,
		}); err != nil {
			logger.Error("Failed to update completed job count for %s: %v", job.WorkerID, err)
		}
	}

	return nil
}

func (uc *JobUseCase) CancelJob(ctx context.Context, jobID, callerID string) (*entity.Job, error) {
	return uc.UpdateJobStatus(ctx, jobID, callerID, UpdateJobStatusInput{Status: entity.JobStatusCancelled})
}

func (uc *JobUseCase) DeleteJob(ctx context.Context, jobID, callerID string) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if job.OwnerID != callerID {
		return errors.Forbidden("Only the job owner can delete it", nil)
	}

	return uc.jobRepo.Delete(ctx, jobID)
}

// RateJob records the owner's rating for a completed job and folds it into
// the worker's aggregate rating.
func (uc *JobUseCase) RateJob(ctx context.Context, jobID, callerID string, rating float64, review string) (*entity.Job, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.OwnerID != callerID {
		return nil, errors.Forbidden("Only the job owner can rate it", nil)
	}
	if job.Status != entity.JobStatusCompleted {
		return nil, errors.BadRequest("Only completed jobs can be rated", nil)
	}
	if job.Rating > 0 {
		return nil, errors.Conflict("Job has already been rated")
	}

	job.Rating = rating
	job.Review = review

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	if worker, err := uc.userRepo.GetByID(ctx, job.WorkerID); err == nil {
		newCount := worker.RatingCount + 1
		newRating := (worker.Rating*float64(worker.RatingCount) + rating) / float64(newCount)
		if err := uc.userRepo.UpdateFields(ctx, job.WorkerID, map[string]interface{}{
			"rating":      newRating,
			"ratingCount": newCount,
		}); err != nil {
			logger.Error("Failed to update rating for worker %s: %v", job.WorkerID, err)
		}
	}

	uc.notificationUc.Notify(ctx, job.WorkerID, entity.NotificationTypeJob,
		"You received a rating",
		fmt.Sprintf("You were rated %.0f stars for \"%s\"", rating, job.Title),
		map[string]interface{}{"job_id": job.ID})

	return job, nil
}
