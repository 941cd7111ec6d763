package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/entity"
	"github.com/tuncayozel/i-inolsun-sub000/internal/domain/repository"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := r.client.Collection("chatRooms").Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to create chat room", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetRoomByID(ctx context.Context, id string) (*entity.ChatRoom, error) {
	doc, err := r.client.Collection("chatRooms").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}

	return &room, nil
}

// GetRoomByParticipants finds the existing two-party room for the given job
// context. Firestore allows only one array-contains clause per query, so the
// second participant is matched in memory.
func (r *firestoreChatRepository) GetRoomByParticipants(ctx context.Context, userA, userB, jobID string) (*entity.ChatRoom, error) {
	query := r.client.Collection("chatRooms").Where("participants", "array-contains", userA)
	if jobID != "" {
		query = query.Where("jobId", "==", jobID)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query chat rooms", err)
	}

	for _, doc := range docs {
		var room entity.ChatRoom
		if err := doc.DataTo(&room); err != nil {
			continue
		}
		if jobID == "" && room.JobID != "" {
			continue
		}
		for _, p := range room.Participants {
			if p == userB {
				return &room, nil
			}
		}
	}

	return nil, errors.NotFound("Chat room", nil)
}

func (r *firestoreChatRepository) ListRoomsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ChatRoom, int64, error) {
	query := r.client.Collection("chatRooms").
		Where("participants", "array-contains", userID).
		OrderBy("lastMessageAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch chat rooms", err)
	}

	total := int64(len(allDocs))

	start := offset
	end := len(allDocs)
	if limit > 0 {
		end = start + limit
		if end > len(allDocs) {
			end = len(allDocs)
		}
	}
	if start > len(allDocs) {
		start = len(allDocs)
	}

	var rooms []*entity.ChatRoom
	for i := start; i < end; i++ {
		var room entity.ChatRoom
		if err := allDocs[i].DataTo(&room); err != nil {
			logger.Warn("Skipping malformed chat room document: %v", err)
			continue
		}
		rooms = append(rooms, &room)
	}

	return rooms, total, nil
}

func (r *firestoreChatRepository) UpdateRoom(ctx context.Context, room *entity.ChatRoom) error {
	room.UpdatedAt = time.Now()

	_, err := r.client.Collection("chatRooms").Doc(room.ID).Set(ctx, room)
	if err != nil {
		return errors.Internal("Failed to update chat room", err)
	}

	return nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessagesByRoom(ctx context.Context, roomID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.client.Collection("messages").
		Where("roomId", "==", roomID).
		OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count messages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreChatRepository) MarkRoomMessagesRead(ctx context.Context, roomID, userID string) error {
	query := r.client.Collection("messages").
		Where("roomId", "==", roomID).
		Where("receiverId", "==", userID).
		Where("read", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query unread messages", err)
	}

	for _, doc := range docs {
		_, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "read", Value: true},
		})
		if err != nil {
			return errors.Internal("Failed to mark message as read", err)
		}
	}

	return nil
}

func (r *firestoreChatRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	query := r.client.Collection("messages").
		Where("receiverId", "==", userID).
		Where("read", "==", false)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread messages", err)
	}

	return len(docs), nil
}
