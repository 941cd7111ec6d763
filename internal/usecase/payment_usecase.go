package usecase

import (
	"context"
	"fmt"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type PaymentUseCase struct {
	balanceRepo    repository.BalanceRepository
	txnRepo        repository.TransactionRepository
	userRepo       repository.UserRepository
	notificationUc *NotificationUseCase
	commissionRate float64
	withdrawFee    float64
}

func NewPaymentUseCase(
	balanceRepo repository.BalanceRepository,
	txnRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	notificationUc *NotificationUseCase,
	commissionRate, withdrawFee float64,
) *PaymentUseCase {
	return &PaymentUseCase{
		balanceRepo:    balanceRepo,
		txnRepo:        txnRepo,
		userRepo:       userRepo,
		notificationUc: notificationUc,
		commissionRate: commissionRate,
		withdrawFee:    withdrawFee,
	}
}

func (uc *PaymentUseCase) GetBalance(ctx context.Context, userID string) (*entity.UserBalance, error) {
	balance, err := uc.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			// Accounts created before balances were provisioned at
			// registration get one on first access.
			balance = &entity.UserBalance{ID: userID, UserID: userID}
			if err := uc.balanceRepo.CreateBalance(ctx, balance); err != nil {
				return nil, err
			}
			return balance, nil
		}
		return nil, err
	}
	return balance, nil
}

func (uc *PaymentUseCase) Deposit(ctx context.Context, userID string, amount float64) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Deposit amount must be positive", nil)
	}

	if _, err := uc.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := uc.balanceRepo.Deposit(ctx, userID, amount, "Balance deposit")
	if err != nil {
		return nil, err
	}

	uc.notificationUc.Notify(ctx, userID, entity.NotificationTypePayment,
		"Deposit completed",
		fmt.Sprintf("%.2f has been added to your balance", amount),
		map[string]interface{}{"transaction_id": txn.ID})

	return txn, nil
}

func (uc *PaymentUseCase) Withdraw(ctx context.Context, userID string, amount float64) (*entity.Transaction, error) {
	if amount <= 0 {
		return nil, errors.BadRequest("Withdrawal amount must be positive", nil)
	}

	if _, err := uc.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := uc.balanceRepo.Withdraw(ctx, userID, amount, uc.withdrawFee, "Balance withdrawal")
	if err != nil {
		return nil, err
	}

	uc.notificationUc.Notify(ctx, userID, entity.NotificationTypePayment,
		"Withdrawal completed",
		fmt.Sprintf("%.2f has been withdrawn from your balance", amount),
		map[string]interface{}{"transaction_id": txn.ID})

	return txn, nil
}

// PayForJob settles a completed job: the owner pays the full price, the
// worker receives the price minus the platform commission, in one atomic
// transfer. The worker's lifetime earnings counter is updated afterwards.
func (uc *PaymentUseCase) PayForJob(ctx context.Context, job *entity.Job) error {
	if job.WorkerID == "" {
		return errors.BadRequest("Job has no assigned worker", nil)
	}

	if _, err := uc.GetBalance(ctx, job.OwnerID); err != nil {
		return err
	}
	if _, err := uc.GetBalance(ctx, job.WorkerID); err != nil {
		return err
	}

	commission := job.Price * uc.commissionRate
	_, err := uc.balanceRepo.TransferJobPayment(ctx, repository.JobPaymentInput{
		JobID:      job.ID,
		JobTitle:   job.Title,
		OwnerID:    job.OwnerID,
		WorkerID:   job.WorkerID,
		Amount:     job.Price,
		Commission: commission,
	})
	if err != nil {
		return err
	}

	// The totalEarnings counter on the user profile is a denormalized
	// display value; the balance document remains the source of truth.
	net := job.Price - commission
	if worker, err := uc.userRepo.GetByID(ctx, job.WorkerID); err == nil {
		if err := uc.userRepo.UpdateFields(ctx, job.WorkerID, map[string]interface{}{
			"totalEarnings": worker.TotalEarnings + net,
		}); err != nil {
			logger.Error("Failed to update earnings for worker %s: %v", job.WorkerID, err)
		}
	}

	uc.notificationUc.Notify(ctx, job.WorkerID, entity.NotificationTypePayment,
		"Payment received",
		fmt.Sprintf("You earned %.2f for \"%s\"", net, job.Title),
		map[string]interface{}{"job_id": job.ID})
	uc.notificationUc.Notify(ctx, job.OwnerID, entity.NotificationTypePayment,
		"Payment sent",
		fmt.Sprintf("You paid %.2f for \"%s\"", job.Price, job.Title),
		map[string]interface{}{"job_id": job.ID})

	return nil
}

func (uc *PaymentUseCase) ListTransactions(ctx context.Context, userID, txnType string, limit, offset int) ([]*entity.Transaction, int64, error) {
	return uc.txnRepo.ListByUser(ctx, userID, txnType, limit, offset)
}
