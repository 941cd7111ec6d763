package entity

import "time"

type ChatRoom struct {
	ID               string            `json:"id" firestore:"id"`
	Participants     []string          `json:"participants" firestore:"participants"`
	ParticipantNames map[string]string `json:"participant_names" firestore:"participantNames"`

	JobID    string `json:"job_id,omitempty" firestore:"jobId,omitempty"`
	JobTitle string `json:"job_title,omitempty" firestore:"jobTitle,omitempty"`

	LastMessage   string         `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time      `json:"last_message_at" firestore:"lastMessageAt"`
	UnreadCount   map[string]int `json:"unread_count" firestore:"unreadCount"` // per participant ID

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
