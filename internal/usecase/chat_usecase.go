package usecase

import (
	"context"
	"time"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/ratelimit"
	ws "github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/websocket"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type ChatUseCase struct {
	chatRepo       repository.ChatRepository
	userRepo       repository.UserRepository
	jobRepo        repository.JobRepository
	pusher         EventPusher
	rateLimiter    *ratelimit.RateLimiter
	notificationUc *NotificationUseCase
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
	pusher EventPusher,
	rateLimiter *ratelimit.RateLimiter,
	notificationUc *NotificationUseCase,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		jobRepo:        jobRepo,
		pusher:         pusher,
		rateLimiter:    rateLimiter,
		notificationUc: notificationUc,
	}
}

// EnsureRoom returns the room between the two users for the given job,
// creating it on first contact. Rooms are unique per participant pair and
// job.
func (uc *ChatUseCase) EnsureRoom(ctx context.Context, userID, otherUserID, jobID string) (*entity.ChatRoom, error) {
	if userID == otherUserID {
		return nil, errors.BadRequest("Cannot open a conversation with yourself", nil)
	}

	room, err := uc.chatRepo.GetRoomByParticipants(ctx, userID, otherUserID, jobID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if allowed, retryAfter := uc.rateLimiter.Allow(userID, "create_room"); !allowed {
		logger.Warn("User %s rate limited on create_room, retry in %v", userID, retryAfter)
		return nil, errors.TooManyRequests("Too many new conversations, try again later", retryAfter)
	}

	me, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	other, err := uc.userRepo.GetByID(ctx, otherUserID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	room = &entity.ChatRoom{
		Participants: []string{userID, otherUserID},
		ParticipantNames: map[string]string{
			userID:      me.Name,
			otherUserID: other.Name,
		},
		UnreadCount: map[string]int{userID: 0, otherUserID: 0},
	}

	if jobID != "" {
		if job, err := uc.jobRepo.GetByID(ctx, jobID); err == nil {
			room.JobID = job.ID
			room.JobTitle = job.Title
		}
	}

	if err := uc.chatRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
	JobID      string
}

// SendMessage writes the message, bumps the room's last-message summary and
// the receiver's unread counter, and pushes the message over the socket.
// Offline receivers get a notification instead.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if input.Content == "" {
		return nil, errors.BadRequest("Message content cannot be empty", nil)
	}

	if allowed, retryAfter := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		logger.Warn("User %s rate limited on send_message, retry in %v", senderID, retryAfter)
		return nil, errors.TooManyRequests("You are sending messages too quickly", retryAfter)
	}

	room, err := uc.EnsureRoom(ctx, senderID, input.ReceiverID, input.JobID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		RoomID:       room.ID,
		SenderID:     senderID,
		SenderName:   room.ParticipantNames[senderID],
		ReceiverID:   input.ReceiverID,
		ReceiverName: room.ParticipantNames[input.ReceiverID],
		Content:      input.Content,
		JobID:        room.JobID,
		JobTitle:     room.JobTitle,
		CreatedAt:    time.Now(),
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	room.LastMessage = input.Content
	room.LastMessageAt = message.CreatedAt
	if room.UnreadCount == nil {
		room.UnreadCount = map[string]int{}
	}
	room.UnreadCount[input.ReceiverID]++
	if err := uc.chatRepo.UpdateRoom(ctx, room); err != nil {
		logger.Error("Failed to update room %s after message: %v", room.ID, err)
	}

	if uc.pusher.IsOnline(input.ReceiverID) {
		uc.pusher.SendEventToUser(input.ReceiverID, ws.Event{
			Type:    ws.EventTypeMessage,
			Payload: message,
		})
		uc.pusher.SendEventToUser(input.ReceiverID, ws.Event{
			Type:    ws.EventTypeRoomUpdate,
			Payload: room,
		})
	} else {
		uc.notificationUc.Notify(ctx, input.ReceiverID, entity.NotificationTypeMessage,
			message.SenderName,
			input.Content,
			map[string]interface{}{"room_id": room.ID, "sender_id": senderID})
	}

	return message, nil
}

func (uc *ChatUseCase) ListRooms(ctx context.Context, userID string, limit, offset int) ([]*entity.ChatRoom, int64) {
	rooms, total, err := uc.chatRepo.ListRoomsByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list rooms for user %s: %v", userID, err)
		return []*entity.ChatRoom{}, 0
	}
	if rooms == nil {
		rooms = []*entity.ChatRoom{}
	}
	return rooms, total
}

// ListRoomMessages returns a room's messages in ascending time order. Only
// participants may read a room.
func (uc *ChatUseCase) ListRoomMessages(ctx context.Context, roomID, callerID string, limit, offset int) ([]*entity.Message, int64, error) {
	room, err := uc.chatRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, 0, err
	}
	if !isParticipant(room, callerID) {
		return nil, 0, errors.Forbidden("You are not a participant of this conversation", nil)
	}

	return uc.chatRepo.ListMessagesByRoom(ctx, roomID, limit, offset)
}

// GetMessagesBetween resolves the room for a user pair and returns its
// messages. A missing room yields an empty conversation, not an error.
func (uc *ChatUseCase) GetMessagesBetween(ctx context.Context, callerID, otherUserID, jobID string, limit, offset int) ([]*entity.Message, int64, error) {
	room, err := uc.chatRepo.GetRoomByParticipants(ctx, callerID, otherUserID, jobID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return []*entity.Message{}, 0, nil
		}
		return nil, 0, err
	}

	return uc.chatRepo.ListMessagesByRoom(ctx, room.ID, limit, offset)
}

// MarkRoomRead marks the caller's unread messages in a room as read and
// resets their unread counter.
func (uc *ChatUseCase) MarkRoomRead(ctx context.Context, roomID, callerID string) error {
	room, err := uc.chatRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !isParticipant(room, callerID) {
		return errors.Forbidden("You are not a participant of this conversation", nil)
	}

	if err := uc.chatRepo.MarkRoomMessagesRead(ctx, roomID, callerID); err != nil {
		return err
	}

	if room.UnreadCount == nil {
		room.UnreadCount = map[string]int{}
	}
	room.UnreadCount[callerID] = 0
	if err := uc.chatRepo.UpdateRoom(ctx, room); err != nil {
		logger.Error("Failed to reset unread counter on room %s: %v", roomID, err)
	}

	return nil
}

func (uc *ChatUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return uc.chatRepo.CountUnread(ctx, userID)
}

func isParticipant(room *entity.ChatRoom, userID string) bool {
	for _, p := range room.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
