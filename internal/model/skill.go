package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultCategoryIcon is used when a category is created without an icon.
	DefaultCategoryIcon = "🎨"
	// DefaultSkillColor is used when a skill is created without a display color.
	DefaultSkillColor = "bg-blue-500"
)

// SkillCategory is a named grouping of skills with a display icon.
// The category name is unique case-sensitively, hence the binary collation.
type SkillCategory struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Category  string    `json:"category" gorm:"type:varchar(255) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Icon      string    `json:"icon" gorm:"size:16;not null;default:'🎨'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations. Display order is insertion order, kept in Skill.Position.
	Skills []Skill `json:"skills" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *SkillCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Skill is a named competency with a proficiency level, embedded in a category.
// Positions within the category are contiguous from zero and shift on delete;
// the UUID is the stable identifier across mutations.
type Skill struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CategoryID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Level      int       `json:"level" gorm:"not null"` // 1..100 inclusive
	Color      string    `json:"color" gorm:"size:64;not null;default:'bg-blue-500'"`
	Position   int       `json:"-" gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
