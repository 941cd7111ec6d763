package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type paymentTestEnv struct {
	balanceRepo *fakeBalanceRepo
	userRepo    *fakeUserRepo
	paymentUc   *PaymentUseCase
}

func newPaymentTestEnv(t *testing.T, commissionRate, withdrawFee float64) *paymentTestEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	balanceRepo := newFakeBalanceRepo()
	txnRepo := &fakeTransactionRepo{balanceRepo: balanceRepo}
	pusher := newFakePusher()

	notificationUc := NewNotificationUseCase(&fakeNotificationRepo{}, newFakeSettingsRepo(), pusher)
	paymentUc := NewPaymentUseCase(balanceRepo, txnRepo, userRepo, notificationUc, commissionRate, withdrawFee)

	return &paymentTestEnv{
		balanceRepo: balanceRepo,
		userRepo:    userRepo,
		paymentUc:   paymentUc,
	}
}

func (env *paymentTestEnv) addUser(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, env.userRepo.Create(context.Background(), &entity.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  id,
	}))
	require.NoError(t, env.balanceRepo.CreateBalance(context.Background(), &entity.UserBalance{
		ID:     id,
		UserID: id,
	}))
}

func TestGetBalanceProvisionsMissingAccount(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 0)

	balance, err := env.paymentUc.GetBalance(context.Background(), "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", balance.UserID)
	assert.Equal(t, 0.0, balance.Balance)
}

func TestDepositAndWithdraw(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 0)
	env.addUser(t, "user")

	txn, err := env.paymentUc.Deposit(context.Background(), "user", 300)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeDeposit, txn.Type)
	assert.Equal(t, 300.0, txn.Amount)

	withdrawal, err := env.paymentUc.Withdraw(context.Background(), "user", 100)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeWithdrawal, withdrawal.Type)
	assert.Equal(t, -100.0, withdrawal.Amount)

	balance, err := env.paymentUc.GetBalance(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, 200.0, balance.Balance)
	assert.Equal(t, 100.0, balance.TotalWithdrawn)
}

func TestWithdrawRejectsNonPositiveAndOverdraw(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 0)
	env.addUser(t, "user")

	_, err := env.paymentUc.Withdraw(context.Background(), "user", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = env.paymentUc.Deposit(context.Background(), "user", 50)
	require.NoError(t, err)

	// Overdraw attempt leaves the balance untouched.
	_, err = env.paymentUc.Withdraw(context.Background(), "user", 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	balance, err := env.paymentUc.GetBalance(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, 50.0, balance.Balance)
}

func TestWithdrawAppliesFee(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 5)
	env.addUser(t, "user")

	_, err := env.paymentUc.Deposit(context.Background(), "user", 100)
	require.NoError(t, err)

	// 97 + 5 fee exceeds the balance.
	_, err = env.paymentUc.Withdraw(context.Background(), "user", 97)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = env.paymentUc.Withdraw(context.Background(), "user", 90)
	require.NoError(t, err)

	balance, err := env.paymentUc.GetBalance(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, 5.0, balance.Balance)
}

func TestPayForJobSplitsCommission(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 0)
	env.addUser(t, "owner")
	env.addUser(t, "worker")

	_, err := env.paymentUc.Deposit(context.Background(), "owner", 1000)
	require.NoError(t, err)

	err = env.paymentUc.PayForJob(context.Background(), &entity.Job{
		ID:       "job-1",
		Title:    "Ev Temizliği",
		OwnerID:  "owner",
		WorkerID: "worker",
		Price:    500,
	})
	require.NoError(t, err)

	ownerBalance, err := env.paymentUc.GetBalance(context.Background(), "owner")
	require.NoError(t, err)
	assert.Equal(t, 500.0, ownerBalance.Balance)

	workerBalance, err := env.paymentUc.GetBalance(context.Background(), "worker")
	require.NoError(t, err)
	assert.Equal(t, 450.0, workerBalance.Balance)
	assert.Equal(t, 450.0, workerBalance.TotalEarned)

	// The job payments carry the job ID as reference.
	txns, _, err := env.paymentUc.ListTransactions(context.Background(), "worker", entity.TransactionTypeJobPayment, 20, 0)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "job-1", txns[0].Reference)
	assert.Equal(t, 500.0, txns[0].Amount)
}

func TestPayForJobRequiresWorker(t *testing.T) {
	env := newPaymentTestEnv(t, 0.10, 0)
	env.addUser(t, "owner")

	err := env.paymentUc.PayForJob(context.Background(), &entity.Job{
		ID:      "job-1",
		OwnerID: "owner",
		Price:   500,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
