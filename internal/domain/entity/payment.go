package entity

import (
	"time"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeJobPayment = "job_payment"
	TransactionTypeCommission = "commission"
	TransactionTypeRefund     = "refund"
)

const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

type Transaction struct {
	ID          string  `json:"id" firestore:"id"`
	UserID      string  `json:"user_id" firestore:"userId"`
	Type        string  `json:"type" firestore:"type"`     // "deposit", "withdrawal", "job_payment", "commission", "refund"
	Amount      float64 `json:"amount" firestore:"amount"` // positive credit, negative debit
	Status      string  `json:"status" firestore:"status"` // "pending", "completed", "failed", "cancelled"
	Description string  `json:"description" firestore:"description"`
	Reference   string  `json:"reference,omitempty" firestore:"reference,omitempty"` // job ID for job payments

	ProcessedAt *time.Time `json:"processed_at,omitempty" firestore:"processedAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
}

type UserBalance struct {
	ID             string  `json:"id" firestore:"id"`
	UserID         string  `json:"user_id" firestore:"userId"`
	Balance        float64 `json:"balance" firestore:"balance"`
	TotalEarned    float64 `json:"total_earned" firestore:"totalEarned"`
	TotalWithdrawn float64 `json:"total_withdrawn" firestore:"totalWithdrawn"`
	PendingAmount  float64 `json:"pending_amount" firestore:"pendingAmount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
