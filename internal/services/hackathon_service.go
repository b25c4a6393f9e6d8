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
	ErrHackathonNotFound     = errors.New("hackathon not found")
	ErrHackathonNameRequired = errors.New("hackathon name is required")
)

// HackathonService handles hackathon business logic
type HackathonService struct {
	hackathons repository.HackathonRepository
}

// NewHackathonService creates a new HackathonService
func NewHackathonService(hackathons repository.HackathonRepository) *HackathonService {
	return &HackathonService{hackathons: hackathons}
}

// CreateHackathonInput represents input for creating a hackathon
type CreateHackathonInput struct {
	UserID      uint64
	Name        string
	Organizer   string
	Dates       string
	Link        string
	Description string
}

// UpdateHackathonInput holds the full replacement set of mutable hackathon fields
type UpdateHackathonInput struct {
	Name        string
	Organizer   string
	Dates       string
	Link        string
	Description string
}

// ListHackathons returns all hackathons newest first
func (s *HackathonService) ListHackathons() ([]models.Hackathon, error) {
	hackathons, err := s.hackathons.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}
	return hackathons, nil
}

// GetHackathon returns a hackathon by ID
func (s *HackathonService) GetHackathon(id uint64) (*models.Hackathon, error) {
	hackathon, err := s.hackathons.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to find hackathon: %w", err)
	}
	return hackathon, nil
}

// CreateHackathon creates a hackathon and returns the stored record
func (s *HackathonService) CreateHackathon(input CreateHackathonInput) (*models.Hackathon, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrHackathonNameRequired
	}

	hackathon := &models.Hackathon{
		UserID:      input.UserID,
		Name:        input.Name,
		Organizer:   input.Organizer,
		Dates:       input.Dates,
		Link:        input.Link,
		Description: input.Description,
	}

	if err := s.hackathons.Create(hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	return s.hackathons.FindByID(hackathon.ID)
}

// UpdateHackathon replaces all mutable fields of a hackathon
func (s *HackathonService) UpdateHackathon(id uint64, input UpdateHackathonInput) (*models.Hackathon, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrHackathonNameRequired
	}

	hackathon, err := s.hackathons.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to find hackathon: %w", err)
	}

	hackathon.Name = input.Name
	hackathon.Organizer = input.Organizer
	hackathon.Dates = input.Dates
	hackathon.Link = input.Link
	hackathon.Description = input.Description

	if err := s.hackathons.Update(hackathon); err != nil {
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}

	return s.hackathons.FindByID(id)
}

// DeleteHackathon removes a hackathon by ID
func (s *HackathonService) DeleteHackathon(id uint64) error {
	if err := s.hackathons.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHackathonNotFound
		}
		return fmt.Errorf("failed to delete hackathon: %w", err)
	}
	return nil
}
