package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project with an optional uploaded screenshot.
type Project struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description1   string    `json:"description1" gorm:"type:text"`
	Description2   string    `json:"description2" gorm:"type:text"`
	Description3   string    `json:"description3" gorm:"type:text"`
	Description4   string    `json:"description4" gorm:"type:text"`
	DeploymentLink string    `json:"deploymentLink" gorm:"size:512"`
	GithubLink     string    `json:"githubLink" gorm:"size:512"`
	ScreenshotURL  *string   `json:"screenshotUrl" gorm:"size:512"` // relative /uploads path, nil when no image
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
