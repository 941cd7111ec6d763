package usecase

import (
	"context"
	"fmt"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type ApplicationUseCase struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
	userRepo        repository.UserRepository
	notificationUc  *NotificationUseCase
}

func NewApplicationUseCase(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	notificationUc *NotificationUseCase,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		notificationUc:  notificationUc,
	}
}

type ApplyInput struct {
	Message       string
	Price         float64
	EstimatedTime string
}

func (uc *ApplicationUseCase) Apply(ctx context.Context, jobID, applicantID string, input ApplyInput) (*entity.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != entity.JobStatusActive {
		return nil, errors.BadRequest("Job is not open for applications", nil)
	}
	if job.OwnerID == applicantID {
		return nil, errors.BadRequest("You cannot apply to your own job", nil)
	}

	if existing, err := uc.applicationRepo.GetByJobAndApplicant(ctx, jobID, applicantID); err == nil && existing != nil {
		if existing.Status == entity.ApplicationStatusPending {
			return nil, errors.Conflict("You have already applied to this job")
		}
	}

	applicant, err := uc.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	application := &entity.JobApplication{
		JobID:          jobID,
		ApplicantID:    applicantID,
		ApplicantEmail: applicant.Email,
		ApplicantName:  applicant.Name,
		JobOwnerID:     job.OwnerID,
		Status:         entity.ApplicationStatusPending,
		Message:        input.Message,
		Price:          input.Price,
		EstimatedTime:  input.EstimatedTime,
	}

	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	uc.notificationUc.Notify(ctx, job.OwnerID, entity.NotificationTypeApplication,
		"New application",
		fmt.Sprintf("%s applied to \"%s\"", applicant.Name, job.Title),
		map[string]interface{}{"job_id": job.ID, "application_id": application.ID})

	return application, nil
}

// ListByJob is restricted to the job owner.
func (uc *ApplicationUseCase) ListByJob(ctx context.Context, jobID, callerID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if job.OwnerID != callerID {
		return nil, 0, errors.Forbidden("Only the job owner can view applications", nil)
	}

	applications, total, err := uc.applicationRepo.ListByJob(ctx, jobID, limit, offset)
	if err != nil {
		logger.Error("Failed to list applications for job %s: %v", jobID, err)
		return []*entity.JobApplication{}, 0, nil
	}
	return applications, total, nil
}

func (uc *ApplicationUseCase) ListMine(ctx context.Context, applicantID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	applications, total, err := uc.applicationRepo.ListByApplicant(ctx, applicantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list applications for user %s: %v", applicantID, err)
		return []*entity.JobApplication{}, 0, nil
	}
	return applications, total, nil
}

// Withdraw is only valid from the pending state; accepted, rejected and
// withdrawn are terminal.
func (uc *ApplicationUseCase) Withdraw(ctx context.Context, applicationID, callerID string) (*entity.JobApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.ApplicantID != callerID {
		return nil, errors.Forbidden("Only the applicant can withdraw an application", nil)
	}
	if application.IsTerminal() {
		return nil, errors.BadRequest("Only pending applications can be withdrawn", nil)
	}

	application.Status = entity.ApplicationStatusWithdrawn
	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// Accept assigns the applicant as the job's worker, moves the job to
// in_progress and rejects the remaining pending applications.
func (uc *ApplicationUseCase) Accept(ctx context.Context, applicationID, callerID string) (*entity.JobApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}

	if job.OwnerID != callerID {
		return nil, errors.Forbidden("Only the job owner can accept applications", nil)
	}
	if application.IsTerminal() {
		return nil, errors.BadRequest("Application is no longer pending", nil)
	}
	if !job.CanTransitionTo(entity.JobStatusInProgress) {
		return nil, errors.BadRequest("Job is not open for applications", nil)
	}

	application.Status = entity.ApplicationStatusAccepted
	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	job.Status = entity.JobStatusInProgress
	job.WorkerID = application.ApplicantID
	job.WorkerName = application.ApplicantName
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	// Losing applicants are rejected in bulk.
	pending, err := uc.applicationRepo.ListPendingByJob(ctx, job.ID)
	if err != nil {
		logger.Error("Failed to list pending applications for job %s: %v", job.ID, err)
	}
	for _, other := range pending {
		if other.ID == application.ID {
			continue
		}
		other.Status = entity.ApplicationStatusRejected
		if err := uc.applicationRepo.Update(ctx, other); err != nil {
			logger.Error("Failed to reject application %s: %v", other.ID, err)
			continue
		}
		uc.notificationUc.Notify(ctx, other.ApplicantID, entity.NotificationTypeApplication,
			"Application rejected",
			fmt.Sprintf("Your application for \"%s\" was not selected", job.Title),
			map[string]interface{}{"job_id": job.ID, "application_id": other.ID})
	}

	uc.notificationUc.Notify(ctx, application.ApplicantID, entity.NotificationTypeApplication,
		"Application accepted",
		fmt.Sprintf("You were selected for \"%s\"", job.Title),
		map[string]interface{}{"job_id": job.ID, "application_id": application.ID})

	return application, nil
}

func (uc *ApplicationUseCase) Reject(ctx context.Context, applicationID, callerID string) (*entity.JobApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.JobOwnerID != callerID {
		return nil, errors.Forbidden("Only the job owner can reject applications", nil)
	}
	if application.IsTerminal() {
		return nil, errors.BadRequest("Application is no longer pending", nil)
	}

	application.Status = entity.ApplicationStatusRejected
	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	uc.notificationUc.Notify(ctx, application.ApplicantID, entity.NotificationTypeApplication,
		"Application rejected",
		"Your application was rejected",
		map[string]interface{}{"job_id": application.JobID, "application_id": application.ID})

	return application, nil
}
