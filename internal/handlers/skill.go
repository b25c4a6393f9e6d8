package handlers

import (
	"errors"
	"strconv"

	"github.com/ds3-project/ds3-backend/internal/dto"
	"github.com/ds3-project/ds3-backend/internal/logger"
	"github.com/ds3-project/ds3-backend/internal/middleware"
	"github.com/ds3-project/ds3-backend/internal/response"
	"github.com/ds3-project/ds3-backend/internal/services"
	"github.com/ds3-project/ds3-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// SkillHandler handles skill endpoints
type SkillHandler struct {
	service *services.SkillService
	log     *logger.Logger
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(service *services.SkillService, log *logger.Logger) *SkillHandler {
	return &SkillHandler{service: service, log: log}
}

type createSkillRequest struct {
	UserID   uint64 `json:"user_id"`
	Name     string `json:"name"`
	Note     string `json:"note"`
	Progress *int   `json:"progress"`
}

type updateSkillRequest struct {
	Name     string `json:"name"`
	Note     string `json:"note"`
	Progress *int   `json:"progress"`
}

// ListSkills handles GET /api/skills. Without a user_id query parameter it
// returns the caller's own skills.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	var ownerID uint64
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		ownerID = parsed
	} else if callerID, ok := middleware.GetUserID(c); ok {
		ownerID = callerID
	}

	skills, err := h.service.ListSkills(&ownerID)
	if err != nil {
		h.log.Error("failed to list skills", "error", err)
		response.InternalError(c)
		return
	}

	response.OK(c, dto.ToSkillDTOs(skills), "")
}

// GetSkill handles GET /api/skills/:id
func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	skill, err := h.service.GetSkill(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSkillNotFound):
			response.NotFound(c, "Skill not found")
		default:
			h.log.Error("failed to get skill", "error", err, "skill_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToSkillDTO(*skill), "")
}

// CreateSkill handles POST /api/skills
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req createSkillRequest
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

	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	skill, err := h.service.CreateSkill(services.CreateSkillInput{
		UserID:   userID,
		Name:     req.Name,
		Note:     req.Note,
		Progress: progress,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSkillNameRequired):
			response.BadRequest(c, "Skill name is required")
		case errors.Is(err, services.ErrProgressOutOfRange):
			response.BadRequest(c, "Progress must be between 0 and 100")
		default:
			h.log.Error("failed to create skill", "error", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, dto.ToSkillDTO(*skill), "Skill created successfully")
}

// UpdateSkill handles PUT /api/skills/:id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	skill, err := h.service.UpdateSkill(id, services.UpdateSkillInput{
		Name:     req.Name,
		Note:     req.Note,
		Progress: progress,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSkillNotFound):
			response.NotFound(c, "Skill not found")
		case errors.Is(err, services.ErrSkillNameRequired):
			response.BadRequest(c, "Skill name is required")
		case errors.Is(err, services.ErrProgressOutOfRange):
			response.BadRequest(c, "Progress must be between 0 and 100")
		default:
			h.log.Error("failed to update skill", "error", err, "skill_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToSkillDTO(*skill), "Skill updated successfully")
}

// DeleteSkill handles DELETE /api/skills/:id
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.service.DeleteSkill(id); err != nil {
		switch {
		case errors.Is(err, services.ErrSkillNotFound):
			response.NotFound(c, "Skill not found")
		default:
			h.log.Error("failed to delete skill", "error", err, "skill_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil, "Skill deleted successfully")
}
