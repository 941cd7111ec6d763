package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createRoomRequest struct {
	UserID string `json:"user_id" validate:"required"`
	JobID  string `json:"job_id"`
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,max=2000"`
	JobID      string `json:"job_id"`
}

func (h *ChatHandler) CreateRoom(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	room, err := h.chatUseCase.EnsureRoom(c.Request().Context(), uid, req.UserID, req.JobID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, room)
}

func (h *ChatHandler) ListRooms(c echo.Context) error {
	uid := getUserIDFromContext(c)
	p := utils.GetPaginationParams(c)

	rooms, total := h.chatUseCase.ListRooms(c.Request().Context(), uid, p.PageSize, p.Offset)
	return response.Paginated(c, rooms, total, p.Page, p.PageSize)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		JobID:      req.JobID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListRoomMessages(c echo.Context) error {
	uid := getUserIDFromContext(c)
	roomID := c.Param("id")
	p := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.ListRoomMessages(c.Request().Context(), roomID, uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, p.Page, p.PageSize)
}

// GetConversation returns the messages between the caller and another user,
// resolved through their room.
func (h *ChatHandler) GetConversation(c echo.Context) error {
	uid := getUserIDFromContext(c)
	otherUserID := c.Param("userId")
	jobID := c.QueryParam("job_id")
	p := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.GetMessagesBetween(c.Request().Context(), uid, otherUserID, jobID, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, p.Page, p.PageSize)
}

func (h *ChatHandler) MarkRoomRead(c echo.Context) error {
	uid := getUserIDFromContext(c)

	if err := h.chatUseCase.MarkRoomRead(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Messages marked as read",
	})
}

func (h *ChatHandler) UnreadCount(c echo.Context) error {
	uid := getUserIDFromContext(c)

	count, err := h.chatUseCase.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{
		"unread": count,
	})
}
