package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

const (
	projectListCacheKey = "projects:list"
	projectListCacheTTL = 5 * time.Minute
)

// ProjectInput carries the text fields of a project. Empty fields are
// treated as "leave unchanged" on update (falsy-overwrite semantics).
type ProjectInput struct {
	Title          string
	Description1   string
	Description2   string
	Description3   string
	Description4   string
	DeploymentLink string
	GithubLink     string
}

// ProjectService handles project operations.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, in ProjectInput, screenshotURL *string) (*model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput, screenshotURL *string) (*model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo    repository.ProjectRepository
	cache   *cache.Client
	uploads *storage.Local
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client, uploads *storage.Local) ProjectService {
	return &projectService{repo: repo, cache: cache, uploads: uploads}
}

// ListProjects returns all projects newest first, cached briefly in Redis.
func (s *projectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, projectListCacheTTL)
	}
	return projects, nil
}

// CreateProject creates a project. The screenshot URL is recorded only when
// an image accompanied the request.
func (s *projectService) CreateProject(ctx context.Context, in ProjectInput, screenshotURL *string) (*model.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.ErrTitleRequired
	}

	project := &model.Project{
		Title:          in.Title,
		Description1:   in.Description1,
		Description2:   in.Description2,
		Description3:   in.Description3,
		Description4:   in.Description4,
		DeploymentLink: in.DeploymentLink,
		GithubLink:     in.GithubLink,
		ScreenshotURL:  screenshotURL,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.invalidateList(ctx)
	return project, nil
}

// UpdateProject replaces each field that is present and non-empty; an empty
// field keeps the previous value. A new screenshot replaces the stored path.
func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput, screenshotURL *string) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	previousScreenshot := project.ScreenshotURL

	overwrite(&project.Title, in.Title)
	overwrite(&project.Description1, in.Description1)
	overwrite(&project.Description2, in.Description2)
	overwrite(&project.Description3, in.Description3)
	overwrite(&project.Description4, in.Description4)
	overwrite(&project.DeploymentLink, in.DeploymentLink)
	overwrite(&project.GithubLink, in.GithubLink)
	if screenshotURL != nil {
		project.ScreenshotURL = screenshotURL
	}

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	if screenshotURL != nil && previousScreenshot != nil && *previousScreenshot != *screenshotURL {
		s.removeScreenshot(*previousScreenshot)
	}

	s.invalidateList(ctx)
	return project, nil
}

// DeleteProject removes a project together with its stored screenshot.
func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("find project: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}

	if project.ScreenshotURL != nil {
		s.removeScreenshot(*project.ScreenshotURL)
	}

	s.invalidateList(ctx)
	return nil
}

// removeScreenshot is best effort; a leftover file never fails the request.
func (s *projectService) removeScreenshot(urlPath string) {
	if s.uploads == nil {
		return
	}
	_ = s.uploads.Delete(urlPath)
}

func (s *projectService) invalidateList(ctx context.Context) {
	_ = s.cache.Delete(ctx, projectListCacheKey)
}

// overwrite applies falsy-overwrite semantics: a non-empty value replaces the
// target, an empty one leaves it untouched.
func overwrite(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
