package entity

import (
	"time"
)

const (
	JobStatusActive     = "active"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

const (
	PriceTypeFixed  = "fixed"
	PriceTypeHourly = "hourly"
)

type Job struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description" firestore:"description"`
	Category    string  `json:"category" firestore:"category"`
	Location    string  `json:"location" firestore:"location"`
	Price       float64 `json:"price" firestore:"price"`
	PriceType   string  `json:"price_type" firestore:"priceType"` // "fixed", "hourly"

	OwnerID      string `json:"owner_id" firestore:"ownerId"`
	EmployerName string `json:"employer_name" firestore:"employerName"`
	Status       string `json:"status" firestore:"status"` // "active", "in_progress", "completed", "cancelled"

	Requirements []string `json:"requirements,omitempty" firestore:"requirements,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty" firestore:"imageUrls,omitempty"`

	WorkerID   string `json:"worker_id,omitempty" firestore:"workerId,omitempty"`
	WorkerName string `json:"worker_name,omitempty" firestore:"workerName,omitempty"`

	Rating float64 `json:"rating,omitempty" firestore:"rating,omitempty"`
	Review string  `json:"review,omitempty" firestore:"review,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	CompletedAt *time.Time `json:"completed_at,omitempty" firestore:"completedAt,omitempty"`
}

// CanTransitionTo reports whether the job lifecycle allows moving to the given
// status. The lifecycle is one-directional: active -> in_progress -> completed,
// with cancellation allowed until the job is completed.
func (j *Job) CanTransitionTo(status string) bool {
	switch j.Status {
	case JobStatusActive:
		return status == JobStatusInProgress || status == JobStatusCancelled
	case JobStatusInProgress:
		return status == JobStatusCompleted || status == JobStatusCancelled
	default:
		return false
	}
}
