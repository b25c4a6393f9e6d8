package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInternshipNotFound     = errors.New("internship not found")
	ErrRoleAndCompanyRequired = errors.New("role and company are required")
)

// InternshipService handles internship business logic
type InternshipService struct {
	internships repository.InternshipRepository
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internships repository.InternshipRepository) *InternshipService {
	return &InternshipService{internships: internships}
}

// CreateInternshipInput represents input for creating an internship
type CreateInternshipInput struct {
	UserID   uint64
	Role     string
	Company  string
	Duration string
	Note     string
}

// UpdateInternshipInput holds the full replacement set of mutable internship fields
type UpdateInternshipInput struct {
	Role     string
	Company  string
	Duration string
	Note     string
}

// ListInternships returns all internships newest first
func (s *InternshipService) ListInternships() ([]models.Internship, error) {
	internships, err := s.internships.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	return internships, nil
}

// GetInternship returns an internship by ID
func (s *InternshipService) GetInternship(id uint64) (*models.Internship, error) {
	internship, err := s.internships.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to find internship: %w", err)
	}
	return internship, nil
}

// CreateInternship creates an internship and returns the stored record
func (s *InternshipService) CreateInternship(input CreateInternshipInput) (*models.Internship, error) {
	if strings.TrimSpace(input.Role) == "" || strings.TrimSpace(input.Company) == "" {
		return nil, ErrRoleAndCompanyRequired
	}

	internship := &models.Internship{
		UserID:   input.UserID,
		Role:     input.Role,
		Company:  input.Company,
		Duration: input.Duration,
		Note:     input.Note,
	}

	if err := s.internships.Create(internship); err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}

	return s.internships.FindByID(internship.ID)
}

// UpdateInternship replaces all mutable fields of an internship
func (s *InternshipService) UpdateInternship(id uint64, input UpdateInternshipInput) (*models.Internship, error) {
	if strings.TrimSpace(input.Role) == "" || strings.TrimSpace(input.Company) == "" {
		return nil, ErrRoleAndCompanyRequired
	}

	internship, err := s.internships.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to find internship: %w", err)
	}

	internship.Role = input.Role
	internship.Company = input.Company
	internship.Duration = input.Duration
	internship.Note = input.Note

	if err := s.internships.Update(internship); err != nil {
		return nil, fmt.Errorf("failed to update internship: %w", err)
	}

	return s.internships.FindByID(id)
}

// DeleteInternship removes an internship by ID
func (s *InternshipService) DeleteInternship(id uint64) error {
	if err := s.internships.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInternshipNotFound
		}
		return fmt.Errorf("failed to delete internship: %w", err)
	}
	return nil
}
