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

// InternshipHandler handles internship endpoints
type InternshipHandler struct {
	service *services.InternshipService
	log     *logger.Logger
}

// NewInternshipHandler creates a new InternshipHandler
func NewInternshipHandler(service *services.InternshipService, log *logger.Logger) *InternshipHandler {
	return &InternshipHandler{service: service, log: log}
}

type createInternshipRequest struct {
	UserID   uint64 `json:"user_id"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Note     string `json:"note"`
}

type updateInternshipRequest struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Note     string `json:"note"`
}

// ListInternships handles GET /api/internships
func (h *InternshipHandler) ListInternships(c *gin.Context) {
	internships, err := h.service.ListInternships()
	if err != nil {
		h.log.Error("failed to list internships", "error", err)
		response.InternalError(c)
		return
	}
	response.OK(c, dto.ToInternshipDTOs(internships), "")
}

// GetInternship handles GET /api/internships/:id
func (h *InternshipHandler) GetInternship(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid internship ID")
		return
	}

	internship, err := h.service.GetInternship(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInternshipNotFound):
			response.NotFound(c, "Internship not found")
		default:
			h.log.Error("failed to get internship", "error", err, "internship_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToInternshipDTO(*internship), "")
}

// CreateInternship handles POST /api/internships
func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	var req createInternshipRequest
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

	internship, err := h.service.CreateInternship(services.CreateInternshipInput{
		UserID:   userID,
		Role:     req.Role,
		Company:  req.Company,
		Duration: req.Duration,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoleAndCompanyRequired):
			response.BadRequest(c, "Role and company are required")
		default:
			h.log.Error("failed to create internship", "error", err)
			response.InternalError(c)
		}
		return
	}

	response.Created(c, dto.ToInternshipDTO(*internship), "Internship created successfully")
}

// UpdateInternship handles PUT /api/internships/:id
func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid internship ID")
		return
	}

	var req updateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	internship, err := h.service.UpdateInternship(id, services.UpdateInternshipInput{
		Role:     req.Role,
		Company:  req.Company,
		Duration: req.Duration,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInternshipNotFound):
			response.NotFound(c, "Internship not found")
		case errors.Is(err, services.ErrRoleAndCompanyRequired):
			response.BadRequest(c, "Role and company are required")
		default:
			h.log.Error("failed to update internship", "error", err, "internship_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, dto.ToInternshipDTO(*internship), "Internship updated successfully")
}

// DeleteInternship handles DELETE /api/internships/:id
func (h *InternshipHandler) DeleteInternship(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid internship ID")
		return
	}

	if err := h.service.DeleteInternship(id); err != nil {
		switch {
		case errors.Is(err, services.ErrInternshipNotFound):
			response.NotFound(c, "Internship not found")
		default:
			h.log.Error("failed to delete internship", "error", err, "internship_id", id)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil, "Internship deleted successfully")
}
