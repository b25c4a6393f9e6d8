package handlers

import (
	"errors"

	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/response"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/ds3-project/ds3-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user endpoints
type UserHandler struct {
	service *services.UserService
	log     *logger.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

type createUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

type updateUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		h.log.Error("failed to list users", "error", err)
		response.InternalError(c)
		return
	}
	response.OK(c, users, "")
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.Error("failed to get user", "error", err, "user_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user, "")
}

// GetUserByUsername handles GET /api/users/username/:username
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.service.GetUserByUsername(c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.Error("failed to get user by username", "error", err)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user, "")
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(services.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameRequired):
			response.BadRequest(c, "Username is required")
		case errors.Is(err, services.ErrUserConflict):
			response.Conflict(c, "Username or email already exists")
		default:
			h.log.Error("failed to create user", "error", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, user, "User created successfully")
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(id, services.UpdateUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrUserConflict):
			response.Conflict(c, "Username or email already exists")
		default:
			h.log.Error("failed to update user", "error", err, "user_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user, "User updated successfully")
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.Error("failed to delete user", "error", err, "user_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil, "User deleted successfully")
}
