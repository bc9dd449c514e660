package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ExperienceRepository defines experience persistence operations.
type ExperienceRepository interface {
	Create(ctx context.Context, experience *model.Experience) error
	Save(ctx context.Context, experience *model.Experience) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error)
	List(ctx context.Context) ([]model.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// Create creates a new experience entry.
func (r *experienceRepository) Create(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

// Save persists changes to an existing experience entry.
func (r *experienceRepository) Save(ctx context.Context, experience *model.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

// FindByID finds an experience entry by ID.
func (r *experienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	var experience model.Experience
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

// List returns all experience entries sorted by start date descending.
func (r *experienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	var experiences []model.Experience
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// Delete removes an experience entry, reporting gorm.ErrRecordNotFound when absent.
func (r *experienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Experience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
