package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
)

type authTestEnv struct {
	userRepo     *fakeUserRepo
	balanceRepo  *fakeBalanceRepo
	settingsRepo *fakeSettingsRepo
	authUc       *AuthUseCase
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	balanceRepo := newFakeBalanceRepo()
	settingsRepo := newFakeSettingsRepo()
	authUc := NewAuthUseCase(userRepo, balanceRepo, settingsRepo, newFakeFirebaseAuth())

	return &authTestEnv{
		userRepo:     userRepo,
		balanceRepo:  balanceRepo,
		settingsRepo: settingsRepo,
		authUc:       authUc,
	}
}

func TestRegisterProvisionsAccount(t *testing.T) {
	env := newAuthTestEnv(t)

	result, err := env.authUc.Register(context.Background(), RegisterInput{
		Email:    "ayse@example.com",
		Password: "sifre1234",
		Name:     "Ayşe Yılmaz",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Ayşe Yılmaz", result.User.Name)

	// Registration provisions the balance and default settings documents.
	balance, err := env.balanceRepo.GetByUserID(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Balance)

	settings, err := env.settingsRepo.GetByUserID(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.True(t, settings.PushNotifications)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newAuthTestEnv(t)

	_, err := env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Ayşe",
	})
	require.NoError(t, err)

	_, err = env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Diğer Ayşe",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLogin(t *testing.T) {
	env := newAuthTestEnv(t)

	_, err := env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Ayşe",
	})
	require.NoError(t, err)

	result, err := env.authUc.Login(context.Background(), "ayse@example.com", "sifre1234")
	require.NoError(t, err)
	assert.Equal(t, "ayse@example.com", result.User.Email)

	_, err = env.authUc.Login(context.Background(), "ayse@example.com", "yanlis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRefreshToken(t *testing.T) {
	env := newAuthTestEnv(t)

	registered, err := env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Ayşe",
	})
	require.NoError(t, err)

	refreshed, err := env.authUc.RefreshToken(context.Background(), registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = env.authUc.RefreshToken(context.Background(), "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	env := newAuthTestEnv(t)

	registered, err := env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Ayşe",
	})
	require.NoError(t, err)

	err = env.authUc.ChangePassword(context.Background(), registered.User.ID, "yanlis", "yeniSifre1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	require.NoError(t, env.authUc.ChangePassword(context.Background(), registered.User.ID, "sifre1234", "yeniSifre1"))

	_, err = env.authUc.Login(context.Background(), "ayse@example.com", "yeniSifre1")
	require.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	env := newAuthTestEnv(t)

	registered, err := env.authUc.Register(context.Background(), RegisterInput{
		Email: "ayse@example.com", Password: "sifre1234", Name: "Ayşe",
	})
	require.NoError(t, err)

	require.NoError(t, env.authUc.DeleteAccount(context.Background(), registered.User.ID, "sifre1234"))

	_, err = env.userRepo.GetByID(context.Background(), registered.User.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
