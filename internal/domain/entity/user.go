package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location string `json:"location,omitempty" firestore:"location,omitempty"`

	Rating        float64  `json:"rating" firestore:"rating"`
	RatingCount   int      `json:"rating_count" firestore:"ratingCount"`
	CompletedJobs int      `json:"completed_jobs" firestore:"completedJobs"`
	TotalEarnings float64  `json:"total_earnings" firestore:"totalEarnings"`
	Skills        []string `json:"skills,omitempty" firestore:"skills,omitempty"`

	MemberSince time.Time `json:"member_since" firestore:"memberSince"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
