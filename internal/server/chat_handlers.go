package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"yatube/internal/featureflags"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/notifications"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// GetRoomMessages handles GET /api/chat/:room/messages?limit=N
func (s *Server) GetRoomMessages(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	if s.flags.Enabled(featureflags.DisableChat, viewerID) {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewServiceUnavailableError("Chat is temporarily disabled"))
	}

	messages, err := s.chatService.History(c.Context(), c.Params("room"), c.QueryInt("limit", 0))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(messages)
}

// WebSocketChatHandler handles WebSocket connections for real-time chat.
// The room comes from the ?room= query parameter; each incoming message is
// persisted, then broadcast to every connection in the room.
func (s *Server) WebSocketChatHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		middleware.ActiveWebSockets.Inc()
		defer middleware.ActiveWebSockets.Dec()

		ctx := context.Background()

		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		if s.flags.Enabled(featureflags.DisableChat, userID) {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"chat is temporarily disabled"}`))
			_ = conn.Close()
			return
		}

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			slog.Error("websocket chat: failed to load user", "user_id", userID, "error", err)
			_ = conn.Close()
			return
		}

		room := conn.Query("room", "general")
		client := s.chatHub.Register(conn, room, user.Username)

		client.IncomingHandler = func(c *notifications.Client, raw []byte) {
			var incoming struct {
				Body string `json:"body"`
			}
			if err := json.Unmarshal(raw, &incoming); err != nil {
				return
			}

			message, err := s.chatService.PostMessage(ctx, service.PostMessageInput{
				Room:     c.Room,
				Username: c.Username,
				Body:     incoming.Body,
			})
			if err != nil {
				if payload, merr := json.Marshal(fiber.Map{"error": err.Error()}); merr == nil {
					c.TrySend(payload)
				}
				return
			}

			s.chatHub.Broadcast(c.Room, notifications.RoomEvent{
				Type:     "message",
				Room:     c.Room,
				Username: message.Username,
				Body:     message.Body,
				SentAt:   message.CreatedAt.UTC().Format(time.RFC3339Nano),
			})
		}

		go client.WritePump()
		client.ReadPump()
	})
}
