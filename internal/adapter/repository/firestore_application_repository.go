package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type firestoreApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &firestoreApplicationRepository{
		client: client,
	}
}

func (r *firestoreApplicationRepository) Create(ctx context.Context, application *entity.JobApplication) error {
	if application.ID == "" {
		doc := r.client.Collection("jobApplications").NewDoc()
		application.ID = doc.ID
	}

	now := time.Now()
	if application.AppliedAt.IsZero() {
		application.AppliedAt = now
	}
	application.UpdatedAt = now

	_, err := r.client.Collection("jobApplications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to create application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) GetByID(ctx context.Context, id string) (*entity.JobApplication, error) {
	doc, err := r.client.Collection("jobApplications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Application", err)
		}
		return nil, errors.Internal("Failed to get application", err)
	}

	var application entity.JobApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse application data", err)
	}

	return &application, nil
}

func (r *firestoreApplicationRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	query := r.client.Collection("jobApplications").
		Where("jobId", "==", jobID).
		OrderBy("appliedAt", firestore.Desc)

	return r.listApplications(ctx, query, limit, offset)
}

func (r *firestoreApplicationRepository) ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.JobApplication, int64, error) {
	query := r.client.Collection("jobApplications").
		Where("applicantId", "==", applicantID).
		OrderBy("appliedAt", firestore.Desc)

	return r.listApplications(ctx, query, limit, offset)
}

func (r *firestoreApplicationRepository) ListPendingByJob(ctx context.Context, jobID string) ([]*entity.JobApplication, error) {
	query := r.client.Collection("jobApplications").
		Where("jobId", "==", jobID).
		Where("status", "==", entity.ApplicationStatusPending)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query pending applications", err)
	}

	var applications []*entity.JobApplication
	for _, doc := range docs {
		var application entity.JobApplication
		if err := doc.DataTo(&application); err != nil {
			continue
		}
		applications = append(applications, &application)
	}

	return applications, nil
}

func (r *firestoreApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*entity.JobApplication, error) {
	query := r.client.Collection("jobApplications").
		Where("jobId", "==", jobID).
		Where("applicantId", "==", applicantID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Application", nil)
		}
		return nil, errors.Internal("Failed to query application", err)
	}

	var application entity.JobApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse application data", err)
	}

	return &application, nil
}

func (r *firestoreApplicationRepository) Update(ctx context.Context, application *entity.JobApplication) error {
	application.UpdatedAt = time.Now()

	_, err := r.client.Collection("jobApplications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to update application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) listApplications(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.JobApplication, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count applications", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var applications []*entity.JobApplication

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate applications", err)
		}

		var application entity.JobApplication
		if err := doc.DataTo(&application); err != nil {
			return nil, 0, errors.Internal("Failed to parse application data", err)
		}
		applications = append(applications, &application)
	}

	return applications, total, nil
}
