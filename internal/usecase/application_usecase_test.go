package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type applicationTestEnv struct {
	jobRepo  *fakeJobRepo
	userRepo *fakeUserRepo
	appUc    *ApplicationUseCase
	jobUc    *JobUseCase
}

func newApplicationTestEnv(t *testing.T) *applicationTestEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo()
	balanceRepo := newFakeBalanceRepo()
	txnRepo := &fakeTransactionRepo{balanceRepo: balanceRepo}
	pusher := newFakePusher()

	notificationUc := NewNotificationUseCase(&fakeNotificationRepo{}, newFakeSettingsRepo(), pusher)
	paymentUc := NewPaymentUseCase(balanceRepo, txnRepo, userRepo, notificationUc, 0.10, 0)
	jobUc := NewJobUseCase(jobRepo, userRepo, paymentUc, notificationUc)
	appUc := NewApplicationUseCase(applicationRepo, jobRepo, userRepo, notificationUc)

	return &applicationTestEnv{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		appUc:    appUc,
		jobUc:    jobUc,
	}
}

func (env *applicationTestEnv) addUser(t *testing.T, id, name string) {
	t.Helper()
	require.NoError(t, env.userRepo.Create(context.Background(), &entity.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  name,
	}))
}

func (env *applicationTestEnv) createJob(t *testing.T, ownerID string) *entity.Job {
	t.Helper()
	job, err := env.jobUc.CreateJob(context.Background(), ownerID, CreateJobInput{
		Title: "Ev Temizliği", Description: "Detaylı ev temizliği", Category: "cleaning",
		Location: "İstanbul", Price: 500, PriceType: entity.PriceTypeFixed,
	})
	require.NoError(t, err)
	return job
}

func TestApply(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	application, err := env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{
		Message: "Bu işte deneyimliyim",
		Price:   450,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ApplicationStatusPending, application.Status)
	assert.Equal(t, "owner", application.JobOwnerID)
	assert.Equal(t, "Worker", application.ApplicantName)
	assert.Equal(t, "worker@example.com", application.ApplicantEmail)
}

func TestApplyRejectsOwnJobAndDuplicates(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	_, err := env.appUc.Apply(context.Background(), job.ID, "owner", ApplyInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.NoError(t, err)

	_, err = env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestApplyRejectsInactiveJob(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	_, err := env.jobUc.CancelJob(context.Background(), job.ID, "owner")
	require.NoError(t, err)

	_, err = env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestWithdrawOnlyFromPending(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	application, err := env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.NoError(t, err)

	// Only the applicant can withdraw.
	_, err = env.appUc.Withdraw(context.Background(), application.ID, "owner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	withdrawn, err := env.appUc.Withdraw(context.Background(), application.ID, "worker")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusWithdrawn, withdrawn.Status)

	// Withdrawn is terminal: a second withdraw fails.
	_, err = env.appUc.Withdraw(context.Background(), application.ID, "worker")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestWithdrawAcceptedApplicationFails(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	application, err := env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.NoError(t, err)

	_, err = env.appUc.Accept(context.Background(), application.ID, "owner")
	require.NoError(t, err)

	_, err = env.appUc.Withdraw(context.Background(), application.ID, "worker")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAcceptAssignsWorkerAndRejectsOthers(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker1", "Worker One")
	env.addUser(t, "worker2", "Worker Two")
	job := env.createJob(t, "owner")

	first, err := env.appUc.Apply(context.Background(), job.ID, "worker1", ApplyInput{})
	require.NoError(t, err)
	second, err := env.appUc.Apply(context.Background(), job.ID, "worker2", ApplyInput{})
	require.NoError(t, err)

	accepted, err := env.appUc.Accept(context.Background(), first.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusAccepted, accepted.Status)

	updatedJob, err := env.jobRepo.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, updatedJob.Status)
	assert.Equal(t, "worker1", updatedJob.WorkerID)
	assert.Equal(t, "Worker One", updatedJob.WorkerName)

	rejected, _, err := env.appUc.ListMine(context.Background(), "worker2", 20, 0)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, second.ID, rejected[0].ID)
	assert.Equal(t, entity.ApplicationStatusRejected, rejected[0].Status)
}

func TestListByJobOwnerOnly(t *testing.T) {
	env := newApplicationTestEnv(t)
	env.addUser(t, "owner", "Owner")
	env.addUser(t, "worker", "Worker")
	job := env.createJob(t, "owner")

	_, err := env.appUc.Apply(context.Background(), job.ID, "worker", ApplyInput{})
	require.NoError(t, err)

	_, _, err = env.appUc.ListByJob(context.Background(), job.ID, "worker", 20, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	applications, total, err := env.appUc.ListByJob(context.Background(), job.ID, "owner", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, applications, 1)
}
