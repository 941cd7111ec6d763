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

type firestoreBalanceRepository struct {
	client *firestore.Client
}

func NewFirestoreBalanceRepository(client *firestore.Client) repository.BalanceRepository {
	return &firestoreBalanceRepository{
		client: client,
	}
}

func (r *firestoreBalanceRepository) CreateBalance(ctx context.Context, balance *entity.UserBalance) error {
	now := time.Now()
	if balance.ID == "" {
		balance.ID = balance.UserID
	}
	if balance.CreatedAt.IsZero() {
		balance.CreatedAt = now
	}
	balance.UpdatedAt = now

	_, err := r.client.Collection("userBalances").Doc(balance.ID).Set(ctx, balance)
	if err != nil {
		return errors.Internal("Failed to create balance", err)
	}

	return nil
}

func (r *firestoreBalanceRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error) {
	doc, err := r.client.Collection("userBalances").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Balance", err)
		}
		return nil, errors.Internal("Failed to get balance", err)
	}

	var balance entity.UserBalance
	if err := doc.DataTo(&balance); err != nil {
		return nil, errors.Internal("Failed to parse balance data", err)
	}

	return &balance, nil
}

// Deposit credits the balance and records the transaction in a single
// Firestore transaction, so a concurrent writer can never observe one
// without the other.
func (r *firestoreBalanceRepository) Deposit(ctx context.Context, userID string, amount float64, description string) (*entity.Transaction, error) {
	now := time.Now()
	txnRef := r.client.Collection("transactions").NewDoc()
	txn := &entity.Transaction{
		ID:          txnRef.ID,
		UserID:      userID,
		Type:        entity.TransactionTypeDeposit,
		Amount:      amount,
		Status:      entity.TransactionStatusCompleted,
		Description: description,
		ProcessedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		balRef := r.client.Collection("userBalances").Doc(userID)
		doc, err := tx.Get(balRef)
		if err != nil {
			return err
		}

		var balance entity.UserBalance
		if err := doc.DataTo(&balance); err != nil {
			return err
		}

		balance.Balance += amount
		balance.UpdatedAt = now

		if err := tx.Set(balRef, &balance); err != nil {
			return err
		}
		return tx.Set(txnRef, txn)
	})

	if err != nil {
		return nil, errors.Internal("Failed to process deposit", err)
	}

	return txn, nil
}

// Withdraw debits the balance atomically. The insufficient-balance check
// runs inside the transaction, so two concurrent withdrawals cannot both
// read a stale balance and overdraw it.
func (r *firestoreBalanceRepository) Withdraw(ctx context.Context, userID string, amount, fee float64, description string) (*entity.Transaction, error) {
	now := time.Now()
	txnRef := r.client.Collection("transactions").NewDoc()
	txn := &entity.Transaction{
		ID:          txnRef.ID,
		UserID:      userID,
		Type:        entity.TransactionTypeWithdrawal,
		Amount:      -amount,
		Status:      entity.TransactionStatusCompleted,
		Description: description,
		ProcessedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var feeTxn *entity.Transaction
	var feeRef *firestore.DocumentRef
	if fee > 0 {
		feeRef = r.client.Collection("transactions").NewDoc()
		feeTxn = &entity.Transaction{
			ID:          feeRef.ID,
			UserID:      userID,
			Type:        entity.TransactionTypeCommission,
			Amount:      -fee,
			Status:      entity.TransactionStatusCompleted,
			Description: "Withdrawal fee",
			ProcessedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		balRef := r.client.Collection("userBalances").Doc(userID)
		doc, err := tx.Get(balRef)
		if err != nil {
			return err
		}

		var balance entity.UserBalance
		if err := doc.DataTo(&balance); err != nil {
			return err
		}

		total := amount + fee
		if balance.Balance < total {
			return errors.BadRequest("Insufficient balance", nil)
		}

		balance.Balance -= total
		balance.TotalWithdrawn += amount
		balance.UpdatedAt = now

		if err := tx.Set(balRef, &balance); err != nil {
			return err
		}
		if err := tx.Set(txnRef, txn); err != nil {
			return err
		}
		if feeTxn != nil {
			return tx.Set(feeRef, feeTxn)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, "BAD_REQUEST") {
			return nil, err
		}
		return nil, errors.Internal("Failed to process withdrawal", err)
	}

	return txn, nil
}

// TransferJobPayment moves the job price from the owner to the worker minus
// the platform commission. All balance mutations and transaction records are
// committed in one Firestore transaction.
func (r *firestoreBalanceRepository) TransferJobPayment(ctx context.Context, input repository.JobPaymentInput) ([]*entity.Transaction, error) {
	now := time.Now()
	net := input.Amount - input.Commission

	ownerTxnRef := r.client.Collection("transactions").NewDoc()
	workerTxnRef := r.client.Collection("transactions").NewDoc()

	txns := []*entity.Transaction{
		{
			ID:          ownerTxnRef.ID,
			UserID:      input.OwnerID,
			Type:        entity.TransactionTypeJobPayment,
			Amount:      -input.Amount,
			Status:      entity.TransactionStatusCompleted,
			Description: "Payment for job: " + input.JobTitle,
			Reference:   input.JobID,
			ProcessedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          workerTxnRef.ID,
			UserID:      input.WorkerID,
			Type:        entity.TransactionTypeJobPayment,
			Amount:      input.Amount,
			Status:      entity.TransactionStatusCompleted,
			Description: "Earnings for job: " + input.JobTitle,
			Reference:   input.JobID,
			ProcessedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	var commissionRef *firestore.DocumentRef
	if input.Commission > 0 {
		commissionRef = r.client.Collection("transactions").NewDoc()
		txns = append(txns, &entity.Transaction{
			ID:          commissionRef.ID,
			UserID:      input.WorkerID,
			Type:        entity.TransactionTypeCommission,
			Amount:      -input.Commission,
			Status:      entity.TransactionStatusCompleted,
			Description: "Platform commission for job: " + input.JobTitle,
			Reference:   input.JobID,
			ProcessedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ownerRef := r.client.Collection("userBalances").Doc(input.OwnerID)
		workerRef := r.client.Collection("userBalances").Doc(input.WorkerID)

		ownerDoc, err := tx.Get(ownerRef)
		if err != nil {
			return err
		}
		workerDoc, err := tx.Get(workerRef)
		if err != nil {
			return err
		}

		var ownerBalance, workerBalance entity.UserBalance
		if err := ownerDoc.DataTo(&ownerBalance); err != nil {
			return err
		}
		if err := workerDoc.DataTo(&workerBalance); err != nil {
			return err
		}

		if ownerBalance.Balance < input.Amount {
			return errors.BadRequest("Insufficient balance", nil)
		}

		ownerBalance.Balance -= input.Amount
		ownerBalance.UpdatedAt = now

		workerBalance.Balance += net
		workerBalance.TotalEarned += net
		workerBalance.UpdatedAt = now

		if err := tx.Set(ownerRef, &ownerBalance); err != nil {
			return err
		}
		if err := tx.Set(workerRef, &workerBalance); err != nil {
			return err
		}
		for i, txn := range txns {
			var ref *firestore.DocumentRef
			switch i {
			case 0:
				ref = ownerTxnRef
			case 1:
				ref = workerTxnRef
			default:
				ref = commissionRef
			}
			if err := tx.Set(ref, txn); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, "BAD_REQUEST") {
			return nil, err
		}
		return nil, errors.Internal("Failed to process job payment", err)
	}

	return txns, nil
}

type firestoreTransactionRepository struct {
	client *firestore.Client
}

func NewFirestoreTransactionRepository(client *firestore.Client) repository.TransactionRepository {
	return &firestoreTransactionRepository{
		client: client,
	}
}

func (r *firestoreTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.ID == "" {
		doc := r.client.Collection("transactions").NewDoc()
		transaction.ID = doc.ID
	}

	now := time.Now()
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = now
	}
	transaction.UpdatedAt = now

	_, err := r.client.Collection("transactions").Doc(transaction.ID).Set(ctx, transaction)
	if err != nil {
		return errors.Internal("Failed to create transaction", err)
	}

	return nil
}

func (r *firestoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	doc, err := r.client.Collection("transactions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Transaction", err)
		}
		return nil, errors.Internal("Failed to get transaction", err)
	}

	var transaction entity.Transaction
	if err := doc.DataTo(&transaction); err != nil {
		return nil, errors.Internal("Failed to parse transaction data", err)
	}

	return &transaction, nil
}

func (r *firestoreTransactionRepository) ListByUser(ctx context.Context, userID, txnType string, limit, offset int) ([]*entity.Transaction, int64, error) {
	query := r.client.Collection("transactions").Where("userId", "==", userID)
	if txnType != "" {
		query = query.Where("type", "==", txnType)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count transactions", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var transactions []*entity.Transaction

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate transactions", err)
		}

		var transaction entity.Transaction
		if err := doc.DataTo(&transaction); err != nil {
			return nil, 0, errors.Internal("Failed to parse transaction data", err)
		}
		transactions = append(transactions, &transaction)
	}

	return transactions, total, nil
}
