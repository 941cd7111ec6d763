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

type firestoreJobRepository struct {
	client *firestore.Client
}

func NewFirestoreJobRepository(client *firestore.Client) repository.JobRepository {
	return &firestoreJobRepository{
		client: client,
	}
}

func (r *firestoreJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == "" {
		doc := r.client.Collection("jobs").NewDoc()
		job.ID = doc.ID
	}

	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	_, err := r.client.Collection("jobs").Doc(job.ID).Set(ctx, job)
	if err != nil {
		return errors.Internal("Failed to create job", err)
	}

	return nil
}

func (r *firestoreJobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	doc, err := r.client.Collection("jobs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Job", err)
		}
		return nil, errors.Internal("Failed to get job", err)
	}

	var job entity.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, errors.Internal("Failed to parse job data", err)
	}

	return &job, nil
}

func (r *firestoreJobRepository) ListActive(ctx context.Context, limit, offset int) ([]*entity.Job, int64, error) {
	query := r.client.Collection("jobs").
		Where("status", "==", entity.JobStatusActive).
		OrderBy("createdAt", firestore.Desc)

	return r.listJobs(ctx, query, limit, offset)
}

func (r *firestoreJobRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Job, int64, error) {
	query := r.client.Collection("jobs").
		Where("category", "==", category).
		Where("status", "==", entity.JobStatusActive).
		OrderBy("createdAt", firestore.Desc)

	return r.listJobs(ctx, query, limit, offset)
}

func (r *firestoreJobRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Job, int64, error) {
	query := r.client.Collection("jobs").
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)

	return r.listJobs(ctx, query, limit, offset)
}

func (r *firestoreJobRepository) ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*entity.Job, int64, error) {
	query := r.client.Collection("jobs").
		Where("workerId", "==", workerID).
		OrderBy("createdAt", firestore.Desc)

	return r.listJobs(ctx, query, limit, offset)
}

func (r *firestoreJobRepository) listJobs(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.Job, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count jobs", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var jobs []*entity.Job

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate jobs", err)
		}

		var job entity.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, 0, errors.Internal("Failed to parse job data", err)
		}
		jobs = append(jobs, &job)
	}

	return jobs, total, nil
}

func (r *firestoreJobRepository) Update(ctx context.Context, job *entity.Job) error {
	job.UpdatedAt = time.Now()

	_, err := r.client.Collection("jobs").Doc(job.ID).Set(ctx, job)
	if err != nil {
		return errors.Internal("Failed to update job", err)
	}

	return nil
}

func (r *firestoreJobRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("jobs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete job", err)
	}

	return nil
}
