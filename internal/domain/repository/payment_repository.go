package repository

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
)

// JobPaymentInput describes the three-legged job payment: the owner is
// debited the full price, the worker is credited the price minus
// commission, and the commission leg is recorded separately.
type JobPaymentInput struct {
	JobID      string
	JobTitle   string
	OwnerID    string
	WorkerID   string
	Amount     float64
	Commission float64
}

type BalanceRepository interface {
	CreateBalance(ctx context.Context, balance *entity.UserBalance) error
	GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error)

	// Deposit, Withdraw and TransferJobPayment perform the balance
	// read-modify-write and the transaction record writes atomically.
	// Withdraw fails when the balance would go negative.
	Deposit(ctx context.Context, userID string, amount float64, description string) (*entity.Transaction, error)
	Withdraw(ctx context.Context, userID string, amount, fee float64, description string) (*entity.Transaction, error)
	TransferJobPayment(ctx context.Context, input JobPaymentInput) ([]*entity.Transaction, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID, txnType string, limit, offset int) ([]*entity.Transaction, int64, error)
}
