package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/storage"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectService_CreateProject(t *testing.T) {
	screenshot := "/uploads/1700000000000.png"

	tests := []struct {
		name          string
		input         ProjectInput
		screenshotURL *string
		setupMock     func(*MockProjectRepository)
		expectedError error
	}{
		{
			name: "successful creation with screenshot",
			input: ProjectInput{
				Title:          "Portfolio",
				Description1:   "A personal site",
				DeploymentLink: "https://example.com",
			},
			screenshotURL: &screenshot,
			setupMock: func(m *MockProjectRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "successful creation without screenshot",
			input: ProjectInput{Title: "Portfolio"},
			setupMock: func(m *MockProjectRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "blank title",
			input:         ProjectInput{Title: "  "},
			setupMock:     func(m *MockProjectRepository) {},
			expectedError: errors.ErrTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProjectRepository)
			tt.setupMock(mockRepo)

			service := NewProjectService(mockRepo, nil, nil)
			project, err := service.CreateProject(context.Background(), tt.input, tt.screenshotURL)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, project)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Title, project.Title)
				assert.Equal(t, tt.screenshotURL, project.ScreenshotURL)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_UpdateProject(t *testing.T) {
	projectID := uuid.New()
	oldShot := "/uploads/1600000000000.png"
	newShot := "/uploads/1700000000000.png"

	stored := func() *model.Project {
		return &model.Project{
			ID:             projectID,
			Title:          "Portfolio",
			Description1:   "A personal site",
			Description2:   "Built with Go",
			DeploymentLink: "https://example.com",
			GithubLink:     "https://github.com/example/portfolio",
			ScreenshotURL:  &oldShot,
		}
	}

	t.Run("empty fields keep stored values", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).Return(stored(), nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		service := NewProjectService(mockRepo, nil, nil)
		project, err := service.UpdateProject(context.Background(), projectID, ProjectInput{
			Title: "Portfolio v2",
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Portfolio v2", project.Title)
		assert.Equal(t, "A personal site", project.Description1)
		assert.Equal(t, "Built with Go", project.Description2)
		assert.Equal(t, "https://example.com", project.DeploymentLink)
		assert.Equal(t, &oldShot, project.ScreenshotURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("new screenshot replaces stored path", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).Return(stored(), nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		service := NewProjectService(mockRepo, nil, nil)
		project, err := service.UpdateProject(context.Background(), projectID, ProjectInput{}, &newShot)

		assert.NoError(t, err)
		assert.Equal(t, "Portfolio", project.Title)
		assert.Equal(t, &newShot, project.ScreenshotURL)
		mockRepo.AssertExpectations(t)
	})

	t.Run("project not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)

		service := NewProjectService(mockRepo, nil, nil)
		project, err := service.UpdateProject(context.Background(), projectID, ProjectInput{Title: "X"}, nil)

		assert.Equal(t, errors.ErrProjectNotFound, err)
		assert.Nil(t, project)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	projectID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)

		service := NewProjectService(mockRepo, nil, nil)
		err := service.DeleteProject(context.Background(), projectID)

		assert.Equal(t, errors.ErrProjectNotFound, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("removes the stored screenshot", func(t *testing.T) {
		uploads, err := storage.NewLocal(t.TempDir())
		assert.NoError(t, err)
		urlPath, err := uploads.Save("shot.png", strings.NewReader("image-bytes"))
		assert.NoError(t, err)

		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, projectID).Return(&model.Project{
			ID:            projectID,
			Title:         "Portfolio",
			ScreenshotURL: &urlPath,
		}, nil)
		mockRepo.On("Delete", mock.Anything, projectID).Return(nil)

		service := NewProjectService(mockRepo, nil, uploads)
		assert.NoError(t, service.DeleteProject(context.Background(), projectID))

		_, err = os.Stat(filepath.Join(uploads.Dir(), filepath.Base(urlPath)))
		assert.True(t, os.IsNotExist(err))
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_ListProjects(t *testing.T) {
	projects := []model.Project{
		{ID: uuid.New(), Title: "Newest"},
		{ID: uuid.New(), Title: "Oldest"},
	}

	mockRepo := new(MockProjectRepository)
	mockRepo.On("List", mock.Anything).Return(projects, nil)

	service := NewProjectService(mockRepo, nil, nil)
	got, err := service.ListProjects(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, projects, got)
	mockRepo.AssertExpectations(t)
}
