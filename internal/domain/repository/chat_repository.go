package repository

import (
	"context"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
)

type ChatRepository interface {
	CreateRoom(ctx context.Context, room *entity.ChatRoom) error
	GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error)
	GetRoomByParticipants(ctx context.Context, userA, userB, jobID string) (*entity.ChatRoom, error)
	ListRoomsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ChatRoom, int64, error)
	UpdateRoom(ctx context.Context, room *entity.ChatRoom) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessagesByRoom(ctx context.Context, roomID string, limit, offset int) ([]*entity.Message, int64, error)
	MarkRoomMessagesRead(ctx context.Context, roomID, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)
}
