package handlers

import (
	"errors"
	"strconv"

	"github.com/ds3-project/ds3-backend/internal/dto"
	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/middleware"
	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/response"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/ds3-project/ds3-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat room and message endpoints
type ChatHandler struct {
	service *services.ChatService
	log     *logger.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service *services.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, log: log}
}

type createRoomRequest struct {
	Name           string              `json:"name"`
	Type           models.ChatRoomType `json:"type"`
	ParticipantIDs []uint64            `json:"participant_ids"`
}

type oneToOneRoomRequest struct {
	UserID1 uint64 `json:"user_id_1"`
	UserID2 uint64 `json:"user_id_2"`
}

type sendMessageRequest struct {
	SenderID uint64 `json:"sender_id"`
	Message  string `json:"message"`
}

// ListRooms handles GET /api/chats/rooms. Without a user_id query parameter
// it returns the caller's own rooms.
func (h *ChatHandler) ListRooms(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		userID = parsed
	}

	rooms, err := h.service.ListRooms(userID)
	if err != nil {
		h.log.Error("failed to list chat rooms", "error", err, "user_id", userID)
		response.InternalError(c)
		return
	}

	response.OK(c, rooms, "")
}

// CreateRoom handles POST /api/chats/rooms
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	participants := req.ParticipantIDs
	if len(participants) == 0 {
		if callerID, ok := middleware.GetUserID(c); ok {
			participants = []uint64{callerID}
		}
	}

	room, err := h.service.CreateRoom(services.CreateRoomInput{
		Name:           req.Name,
		Type:           req.Type,
		ParticipantIDs: participants,
	})
	if err != nil {
		h.log.Error("failed to create chat room", "error", err)
		response.InternalError(c)
		return
	}

	response.Created(c, room, "Chat room created successfully")
}

// GetOrCreateOneToOne handles POST /api/chats/rooms/one-to-one. Concurrent
// requests for the same pair converge on a single room.
func (h *ChatHandler) GetOrCreateOneToOne(c *gin.Context) {
	var req oneToOneRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID1 := req.UserID1
	if userID1 == 0 {
		if callerID, ok := middleware.GetUserID(c); ok {
			userID1 = callerID
		}
	}

	room, created, err := h.service.GetOrCreateOneToOne(userID1, req.UserID2)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParticipantsRequired):
			response.BadRequest(c, "Both participants are required")
		default:
			h.log.Error("failed to get or create chat room", "error", err)
			response.InternalError(c)
		}
		return
	}

	if created {
		response.Created(c, room, "Chat room created successfully")
		return
	}
	response.OK(c, room, "Chat room already exists")
}

// ListMessages handles GET /api/chats/rooms/:roomId/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "roomId")
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	messages, err := h.service.ListMessages(roomID, utils.GetMessageLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			response.NotFound(c, "Chat room not found")
		default:
			h.log.Error("failed to list messages", "error", err, "room_id", roomID)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToMessageDTOs(messages), "")
}

// SendMessage handles POST /api/chats/rooms/:roomId/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "roomId")
	if err != nil {
		response.BadRequest(c, "Invalid room ID")
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	senderID := req.SenderID
	if senderID == 0 {
		if callerID, ok := middleware.GetUserID(c); ok {
			senderID = callerID
		}
	}

	message, err := h.service.SendMessage(roomID, senderID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMessageRequired):
			response.BadRequest(c, "Message text is required")
		case errors.Is(err, services.ErrRoomNotFound):
			response.NotFound(c, "Chat room not found")
		default:
			h.log.Error("failed to send message", "error", err, "room_id", roomID)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, dto.ToMessageDTO(*message), "Message sent successfully")
}

// DeleteMessage handles DELETE /api/chats/messages/:id
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid message ID")
		return
	}

	if err := h.service.DeleteMessage(id); err != nil {
		switch {
		case errors.Is(err, services.ErrMessageNotFound):
			response.NotFound(c, "Message not found")
		default:
			h.log.Error("failed to delete message", "error", err, "message_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil, "Message deleted successfully")
}
