package handlers

import (
	"errors"

	"github.com/ds3-project/ds3-backend/internal/dto"
	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/middleware"
	"github.com/ds3-project/ds3-backend/internal/response"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/ds3-project/ds3-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// HackathonHandler handles hackathon endpoints
type HackathonHandler struct {
	service *services.HackathonService
	log     *logger.Logger
}

// NewHackathonHandler creates a new HackathonHandler
func NewHackathonHandler(service *services.HackathonService, log *logger.Logger) *HackathonHandler {
	return &HackathonHandler{service: service, log: log}
}

type createHackathonRequest struct {
	UserID      uint64 `json:"user_id"`
	Name        string `json:"name"`
	Organizer   string `json:"organizer"`
	Dates       string `json:"dates"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type updateHackathonRequest struct {
	Name        string `json:"name"`
	Organizer   string `json:"organizer"`
	Dates       string `json:"dates"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// ListHackathons handles GET /api/hackathons
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	hackathons, err := h.service.ListHackathons()
	if err != nil {
		h.log.Error("failed to list hackathons", "error", err)
		response.InternalError(c)
		return
	}
	response.OK(c, dto.ToHackathonDTOs(hackathons), "")
}

// GetHackathon handles GET /api/hackathons/:id
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid hackathon ID")
		return
	}

	hackathon, err := h.service.GetHackathon(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHackathonNotFound):
			response.NotFound(c, "Hackathon not found")
		default:
			h.log.Error("failed to get hackathon", "error", err, "hackathon_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToHackathonDTO(*hackathon), "")
}

// CreateHackathon handles POST /api/hackathons
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req createHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := req.UserID
	if userID == 0 {
		if callerID, ok := middleware.GetUserID(c); ok {
			userID = callerID
		}
	}

	hackathon, err := h.service.CreateHackathon(services.CreateHackathonInput{
		UserID:      userID,
		Name:        req.Name,
		Organizer:   req.Organizer,
		Dates:       req.Dates,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHackathonNameRequired):
			response.BadRequest(c, "Hackathon name is required")
		default:
			h.log.Error("failed to create hackathon", "error", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, dto.ToHackathonDTO(*hackathon), "Hackathon created successfully")
}

// UpdateHackathon handles PUT /api/hackathons/:id
func (h *HackathonHandler) UpdateHackathon(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid hackathon ID")
		return
	}

	var req updateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hackathon, err := h.service.UpdateHackathon(id, services.UpdateHackathonInput{
		Name:        req.Name,
		Organizer:   req.Organizer,
		Dates:       req.Dates,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHackathonNotFound):
			response.NotFound(c, "Hackathon not found")
		case errors.Is(err, services.ErrHackathonNameRequired):
			response.BadRequest(c, "Hackathon name is required")
		default:
			h.log.Error("failed to update hackathon", "error", err, "hackathon_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToHackathonDTO(*hackathon), "Hackathon updated successfully")
}

// DeleteHackathon handles DELETE /api/hackathons/:id
func (h *HackathonHandler) DeleteHackathon(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid hackathon ID")
		return
	}

	if err := h.service.DeleteHackathon(id); err != nil {
		switch {
		case errors.Is(err, services.ErrHackathonNotFound):
			response.NotFound(c, "Hackathon not found")
		default:
			h.log.Error("failed to delete hackathon", "error", err, "hackathon_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil, "Hackathon deleted successfully")
}
