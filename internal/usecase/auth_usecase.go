package usecase

import (
	"context"
	"time"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	balanceRepo  repository.BalanceRepository
	settingsRepo repository.SettingsRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	balanceRepo repository.BalanceRepository,
	settingsRepo repository.SettingsRepository,
	firebaseAuth FirebaseAuthClient,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		balanceRepo:  balanceRepo,
		settingsRepo: settingsRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		Email:       input.Email,
		Name:        input.Name,
		Phone:       input.Phone,
		MemberSince: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	// Every account starts with an empty balance and default settings, so
	// the rest of the system never has to lazily create them.
	balance := &entity.UserBalance{
		ID:     uid,
		UserID: uid,
	}
	if err := uc.balanceRepo.CreateBalance(ctx, balance); err != nil {
		logger.Error("Failed to create balance for user %s: %v", uid, err)
	}
	if err := uc.settingsRepo.Set(ctx, entity.DefaultSettings(uid)); err != nil {
		logger.Error("Failed to create default settings for user %s: %v", uid, err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIDToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout is handled client-side by discarding the token. Kept as an explicit
// operation so the API surface matches the app's auth flow.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// ChangePassword re-authenticates with the current password before updating.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, uid, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.firebaseAuth.UpdateUserPassword(ctx, uid, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

// DeleteAccount removes the auth identity and the user document. Job and
// message history is retained under the orphaned ID.
func (uc *AuthUseCase) DeleteAccount(ctx context.Context, uid, password string) error {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return errors.NotFound("User", err)
	}

	if _, _, err := uc.firebaseAuth.SignInWithEmailPassword(user.Email, password); err != nil {
		return errors.Unauthorized("Password is incorrect", err)
	}

	if err := uc.firebaseAuth.DeleteUser(ctx, uid); err != nil {
		return errors.Internal("Failed to delete auth account", err)
	}

	if err := uc.userRepo.Delete(ctx, uid); err != nil {
		return errors.Internal("Failed to delete user record", err)
	}

	return nil
}
