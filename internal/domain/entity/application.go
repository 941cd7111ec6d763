package entity

import (
	"time"
)

const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

type JobApplication struct {
	ID    string `json:"id" firestore:"id"`
	JobID string `json:"job_id" firestore:"jobId"`

	ApplicantID    string `json:"applicant_id" firestore:"applicantId"`
	ApplicantEmail string `json:"applicant_email" firestore:"applicantEmail"`
	ApplicantName  string `json:"applicant_name" firestore:"applicantName"`

	// Denormalized from the job at creation time, never re-validated afterwards.
	JobOwnerID string `json:"job_owner_id" firestore:"jobOwnerId"`

	Status        string  `json:"status" firestore:"status"` // "pending", "accepted", "rejected", "withdrawn"
	Message       string  `json:"message,omitempty" firestore:"message,omitempty"`
	Price         float64 `json:"price,omitempty" firestore:"price,omitempty"`
	EstimatedTime string  `json:"estimated_time,omitempty" firestore:"estimatedTime,omitempty"`

	AppliedAt time.Time `json:"applied_at" firestore:"appliedAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsTerminal reports whether the application status can no longer change.
// pending -> {accepted, rejected, withdrawn}, terminal otherwise.
func (a *JobApplication) IsTerminal() bool {
	return a.Status != ApplicationStatusPending
}
