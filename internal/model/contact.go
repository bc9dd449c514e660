package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a public contact-form submission. Records are immutable once
// created; there is no update or delete surface.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:64;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
