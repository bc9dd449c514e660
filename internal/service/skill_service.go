package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio/internal/cache"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	statsCacheKey = "skills:stats"
	statsCacheTTL = 5 * time.Minute
)

// SkillInput carries the fields of a single skill.
type SkillInput struct {
	Name  string
	Level int
	Color string
}

// CreateCategoryInput carries the fields for a new category, optionally with
// an initial skill list.
type CreateCategoryInput struct {
	Category string
	Icon     string
	Skills   []SkillInput
}

// TopSkill is one entry in the stats top-5 list.
type TopSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillStats aggregates proficiency across all categories.
type SkillStats struct {
	TotalCategories    int        `json:"totalCategories"`
	TotalSkills        int        `json:"totalSkills"`
	AverageProficiency int        `json:"averageProficiency"`
	TopSkills          []TopSkill `json:"topSkills"`
}

// SkillService handles skill category operations and the embedded skill list.
type SkillService interface {
	ListCategories(ctx context.Context) ([]model.SkillCategory, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error)
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*model.SkillCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name, icon string) (*model.SkillCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	AddSkill(ctx context.Context, categoryID uuid.UUID, in SkillInput) (*model.SkillCategory, error)
	UpdateSkillAt(ctx context.Context, categoryID uuid.UUID, index int, in SkillInput) (*model.SkillCategory, error)
	DeleteSkillAt(ctx context.Context, categoryID uuid.UUID, index int) (*model.SkillCategory, error)
	Stats(ctx context.Context) (*SkillStats, error)
}

type skillService struct {
	repo  repository.SkillCategoryRepository
	cache *cache.Client
}

// NewSkillService creates a new skill service.
func NewSkillService(repo repository.SkillCategoryRepository, cache *cache.Client) SkillService {
	return &skillService{repo: repo, cache: cache}
}

// ListCategories returns all categories in insertion order.
func (s *skillService) ListCategories(ctx context.Context) ([]model.SkillCategory, error) {
	return s.repo.List(ctx)
}

// GetCategory returns one category by ID.
func (s *skillService) GetCategory(ctx context.Context, id uuid.UUID) (*model.SkillCategory, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// CreateCategory creates a category with an optional initial skill list.
// Category names are unique case-sensitively.
func (s *skillService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*model.SkillCategory, error) {
	name := strings.TrimSpace(in.Category)
	if name == "" {
		return nil, errors.ErrCategoryNameRequired
	}

	existing, err := s.repo.FindByCategory(ctx, name)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check category existence: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrCategoryExists
	}

	icon := in.Icon
	if icon == "" {
		icon = model.DefaultCategoryIcon
	}

	category := &model.SkillCategory{
		Category: name,
		Icon:     icon,
		Skills:   make([]model.Skill, 0, len(in.Skills)),
	}
	for i, sk := range in.Skills {
		skill, err := buildSkill(sk, i)
		if err != nil {
			return nil, err
		}
		if hasSkillNamed(category.Skills, skill.Name, -1) {
			return nil, errors.ErrSkillExists
		}
		category.Skills = append(category.Skills, *skill)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.invalidateStats(ctx)
	return category, nil
}

// UpdateCategory renames a category and/or replaces its icon. The new name
// must not collide with a different existing category.
func (s *skillService) UpdateCategory(ctx context.Context, id uuid.UUID, name, icon string) (*model.SkillCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.ErrCategoryNameRequired
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if name != category.Category {
		existing, err := s.repo.FindByCategory(ctx, name)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check category existence: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, errors.ErrCategoryExists
		}
	}

	category.Category = name
	if icon != "" {
		category.Icon = icon
	}

	if err := s.repo.Save(ctx, category); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrCategoryExists
		}
		return nil, fmt.Errorf("save category: %w", err)
	}

	s.invalidateStats(ctx)
	return category, nil
}

// DeleteCategory removes the category and all embedded skills atomically.
func (s *skillService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	s.invalidateStats(ctx)
	return nil
}

// AddSkill appends a skill to a category. The skill name must be unique
// case-insensitively within the category. The category row is locked for the
// duration of the mutation so concurrent edits cannot overwrite each other.
func (s *skillService) AddSkill(ctx context.Context, categoryID uuid.UUID, in SkillInput) (*model.SkillCategory, error) {
	skill, err := buildSkill(in, 0)
	if err != nil {
		return nil, err
	}

	var out *model.SkillCategory
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.SkillCategoryRepository) error {
		category, err := lockCategory(ctx, repo, categoryID)
		if err != nil {
			return err
		}

		if hasSkillNamed(category.Skills, skill.Name, -1) {
			return errors.ErrSkillExists
		}

		skill.CategoryID = categoryID
		skill.Position = len(category.Skills)
		if err := repo.CreateSkill(ctx, skill); err != nil {
			return fmt.Errorf("create skill: %w", err)
		}

		category.Skills = append(category.Skills, *skill)
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return out, nil
}

// UpdateSkillAt edits the skill at the given position. The position must be
// within bounds and the new name must not collide with a different position.
// The skill keeps its stable ID; an omitted color keeps the existing one.
func (s *skillService) UpdateSkillAt(ctx context.Context, categoryID uuid.UUID, index int, in SkillInput) (*model.SkillCategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.ErrSkillNameRequired
	}
	if in.Level < 1 || in.Level > 100 {
		return nil, errors.ErrInvalidSkillLevel
	}

	var out *model.SkillCategory
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.SkillCategoryRepository) error {
		category, err := lockCategory(ctx, repo, categoryID)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(category.Skills) {
			return errors.ErrSkillNotFound
		}
		if hasSkillNamed(category.Skills, name, index) {
			return errors.ErrSkillExists
		}

		skill := category.Skills[index]
		skill.Name = name
		skill.Level = in.Level
		if in.Color != "" {
			skill.Color = in.Color
		}
		if err := repo.SaveSkill(ctx, &skill); err != nil {
			return fmt.Errorf("save skill: %w", err)
		}

		category.Skills[index] = skill
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return out, nil
}

// DeleteSkillAt removes the skill at the given position and shifts subsequent
// positions down by one.
func (s *skillService) DeleteSkillAt(ctx context.Context, categoryID uuid.UUID, index int) (*model.SkillCategory, error) {
	var out *model.SkillCategory
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.SkillCategoryRepository) error {
		category, err := lockCategory(ctx, repo, categoryID)
		if err != nil {
			return err
		}

		if index < 0 || index >= len(category.Skills) {
			return errors.ErrSkillNotFound
		}

		if err := repo.DeleteSkill(ctx, category.Skills[index].ID); err != nil {
			return fmt.Errorf("delete skill: %w", err)
		}
		if err := repo.ShiftPositionsAfter(ctx, categoryID, index); err != nil {
			return fmt.Errorf("shift positions: %w", err)
		}

		category.Skills = append(category.Skills[:index], category.Skills[index+1:]...)
		for i := index; i < len(category.Skills); i++ {
			category.Skills[i].Position = i
		}
		out = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)
	return out, nil
}

// Stats computes aggregate statistics across all categories, cached briefly
// in Redis.
func (s *skillService) Stats(ctx context.Context) (*SkillStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached SkillStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	stats := computeStats(categories)

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}

func computeStats(categories []model.SkillCategory) *SkillStats {
	stats := &SkillStats{
		TotalCategories: len(categories),
		TopSkills:       []TopSkill{},
	}

	var all []TopSkill
	total := 0
	for _, cat := range categories {
		for _, sk := range cat.Skills {
			all = append(all, TopSkill{Name: sk.Name, Level: sk.Level})
			total += sk.Level
		}
	}
	stats.TotalSkills = len(all)
	if len(all) == 0 {
		return stats
	}

	stats.AverageProficiency = int(math.Round(float64(total) / float64(len(all))))

	// Ties keep original category/position order.
	sort.SliceStable(all, func(i, j int) bool { return all[i].Level > all[j].Level })
	if len(all) > 5 {
		all = all[:5]
	}
	stats.TopSkills = all
	return stats
}

func (s *skillService) invalidateStats(ctx context.Context) {
	_ = s.cache.Delete(ctx, statsCacheKey)
}

// lockCategory loads a category under a row lock, translating not-found.
func lockCategory(ctx context.Context, repo repository.SkillCategoryRepository, id uuid.UUID) (*model.SkillCategory, error) {
	category, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("lock category: %w", err)
	}
	return category, nil
}

// buildSkill validates and normalizes a skill input.
func buildSkill(in SkillInput, position int) (*model.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.ErrSkillNameRequired
	}
	if in.Level < 1 || in.Level > 100 {
		return nil, errors.ErrInvalidSkillLevel
	}
	color := in.Color
	if color == "" {
		color = model.DefaultSkillColor
	}
	return &model.Skill{
		Name:     name,
		Level:    in.Level,
		Color:    color,
		Position: position,
	}, nil
}

// hasSkillNamed reports a case-insensitive name collision, ignoring the skill
// at position exclude (-1 to check all).
func hasSkillNamed(skills []model.Skill, name string, exclude int) bool {
	for i, sk := range skills {
		if i != exclude && strings.EqualFold(sk.Name, name) {
			return true
		}
	}
	return false
}
