package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio/internal/model"
)

// SkillCategoryRepository defines persistence for skill categories and their
// embedded skills.
type SkillCategoryRepository interface {
	Create(ctx context.Context, category *model.SkillCategory) error
	Save(ctx context.Context, category *model.SkillCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error)
	FindByCategory(ctx context.Context, name string) (*model.SkillCategory, error)
	List(ctx context.Context) ([]model.SkillCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CreateSkill(ctx context.Context, skill *model.Skill) error
	SaveSkill(ctx context.Context, skill *model.Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	ShiftPositionsAfter(ctx context.Context, categoryID uuid.UUID, position int) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillCategoryRepository) error) error
}

type skillCategoryRepository struct {
	db *gorm.DB
}

// NewSkillCategoryRepository creates a new skill category repository.
func NewSkillCategoryRepository(db *gorm.DB) SkillCategoryRepository {
	return &skillCategoryRepository{db: db}
}

func preloadSkills(db *gorm.DB) *gorm.DB {
	return db.Order("skills.position ASC")
}

// Create creates a new skill category with its skills.
func (r *skillCategoryRepository) Create(ctx context.Context, category *model.SkillCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Save persists changes to a category record (not its skills).
func (r *skillCategoryRepository) Save(ctx context.Context, category *model.SkillCategory) error {
	return r.db.WithContext(ctx).Omit("Skills").Save(category).Error
}

// FindByID finds a category by ID with skills ordered by position.
func (r *skillCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error) {
	var category model.SkillCategory
	if err := r.db.WithContext(ctx).Preload("Skills", preloadSkills).
		Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindByIDForUpdate finds a category by ID holding a row-level lock on the
// category row, serializing concurrent skill mutations against it.
func (r *skillCategoryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error) {
	var category model.SkillCategory
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Where("category_id = ?", id).
		Order("position ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	category.Skills = skills
	return &category, nil
}

// FindByCategory finds a category by its exact name. The column carries a
// binary collation, so the match is case-sensitive.
func (r *skillCategoryRepository) FindByCategory(ctx context.Context, name string) (*model.SkillCategory, error) {
	var category model.SkillCategory
	if err := r.db.WithContext(ctx).Where("category = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories in insertion order with skills ordered by position.
func (r *skillCategoryRepository) List(ctx context.Context) ([]model.SkillCategory, error) {
	var categories []model.SkillCategory
	if err := r.db.WithContext(ctx).Preload("Skills", preloadSkills).
		Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes a category and all its skills atomically.
func (r *skillCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Skill{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.SkillCategory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateSkill appends a skill row.
func (r *skillCategoryRepository) CreateSkill(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

// SaveSkill persists changes to a skill row.
func (r *skillCategoryRepository) SaveSkill(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

// DeleteSkill removes a single skill row.
func (r *skillCategoryRepository) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Skill{}).Error
}

// ShiftPositionsAfter decrements the position of every skill after the given
// position, closing the gap left by a delete.
func (r *skillCategoryRepository) ShiftPositionsAfter(ctx context.Context, categoryID uuid.UUID, position int) error {
	return r.db.WithContext(ctx).Model(&model.Skill{}).
		Where("category_id = ? AND position > ?", categoryID, position).
		UpdateColumn("position", gorm.Expr("position - 1")).Error
}

// WithTransaction executes a function within a database transaction.
func (r *skillCategoryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SkillCategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &skillCategoryRepository{db: tx})
	})
}
