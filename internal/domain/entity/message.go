package entity

import "time"

// Message is the single canonical message shape: room-keyed, with the two
// participants denormalized onto every message. A room always has exactly
// two participants.
type Message struct {
	ID     string `json:"id" firestore:"id"`
	RoomID string `json:"room_id" firestore:"roomId"`

	SenderID     string `json:"sender_id" firestore:"senderId"`
	SenderName   string `json:"sender_name" firestore:"senderName"`
	ReceiverID   string `json:"receiver_id" firestore:"receiverId"`
	ReceiverName string `json:"receiver_name" firestore:"receiverName"`

	Content string `json:"content" firestore:"content"`
	Read    bool   `json:"read" firestore:"read"`

	JobID    string `json:"job_id,omitempty" firestore:"jobId,omitempty"`
	JobTitle string `json:"job_title,omitempty" firestore:"jobTitle,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
