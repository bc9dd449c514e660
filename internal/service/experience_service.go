package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ExperienceInput carries the full field set of an experience entry. A nil
// EndDate means the role is ongoing.
type ExperienceInput struct {
	Company     string
	Role        string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

// ExperienceService handles work experience operations.
type ExperienceService interface {
	ListExperiences(ctx context.Context) ([]model.Experience, error)
	CreateExperience(ctx context.Context, in ExperienceInput) (*model.Experience, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, in ExperienceInput) (*model.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
}

type experienceService struct {
	repo repository.ExperienceRepository
}

// NewExperienceService creates a new experience service.
func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

// ListExperiences returns all entries sorted by start date descending.
func (s *experienceService) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	return s.repo.List(ctx)
}

// CreateExperience creates an entry; company and role are required.
func (s *experienceService) CreateExperience(ctx context.Context, in ExperienceInput) (*model.Experience, error) {
	if err := validateExperience(in); err != nil {
		return nil, err
	}

	experience := &model.Experience{
		Company:     in.Company,
		Role:        in.Role,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, experience); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return experience, nil
}

// UpdateExperience replaces the full document with validation.
func (s *experienceService) UpdateExperience(ctx context.Context, id uuid.UUID, in ExperienceInput) (*model.Experience, error) {
	if err := validateExperience(in); err != nil {
		return nil, err
	}

	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	experience.Company = in.Company
	experience.Role = in.Role
	experience.StartDate = in.StartDate
	experience.EndDate = in.EndDate
	experience.Description = in.Description

	if err := s.repo.Save(ctx, experience); err != nil {
		return nil, fmt.Errorf("save experience: %w", err)
	}
	return experience, nil
}

// DeleteExperience removes an entry.
func (s *experienceService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrExperienceNotFound
		}
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func validateExperience(in ExperienceInput) error {
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Role) == "" {
		return errors.ErrMissingExperienceFields
	}
	return nil
}
