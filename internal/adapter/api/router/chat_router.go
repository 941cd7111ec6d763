package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("/rooms", chatHandler.CreateRoom)
	chats.GET("/rooms", chatHandler.ListRooms)
	chats.GET("/rooms/:id/messages", chatHandler.ListRoomMessages)
	chats.POST("/rooms/:id/read", chatHandler.MarkRoomRead)

	chats.POST("/messages", chatHandler.SendMessage)
	chats.GET("/with/:userId", chatHandler.GetConversation)
	chats.GET("/unread-count", chatHandler.UnreadCount)
}
