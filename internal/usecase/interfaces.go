package usecase

import (
	"context"

	ws "github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/websocket"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, string, error)
	RefreshIDToken(refreshToken string) (string, string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}

// EventPusher delivers live events to connected clients. Offline users are
// skipped; their unread state is persisted by the repositories.
type EventPusher interface {
	SendEventToUser(userID string, event ws.Event)
	IsOnline(userID string) bool
}
