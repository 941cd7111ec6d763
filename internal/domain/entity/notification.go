package entity

import "time"

const (
	NotificationTypeApplication = "application"
	NotificationTypeMessage     = "message"
	NotificationTypePayment     = "payment"
	NotificationTypeJob         = "job"
	NotificationTypeSystem      = "system"
)

type Notification struct {
	ID      string                 `json:"id" firestore:"id"`
	UserID  string                 `json:"user_id" firestore:"userId"`
	Title   string                 `json:"title" firestore:"title"`
	Message string                 `json:"message" firestore:"message"`
	Type    string                 `json:"type" firestore:"type"`
	Read    bool                   `json:"read" firestore:"read"`
	Data    map[string]interface{} `json:"data,omitempty" firestore:"data,omitempty"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	ReadAt    *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`
}
