package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience represents a work experience entry. A nil EndDate means the role
// is ongoing.
type Experience struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Company     string     `json:"company" gorm:"size:255;not null"`
	Role        string     `json:"role" gorm:"size:255;not null"`
	StartDate   *time.Time `json:"startDate" gorm:"index"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Duration formats the whole months between start and end (or now when
// ongoing) as "Xy Ym", dropping the zero component. Empty when no start date.
func (e *Experience) Duration() string {
	return e.durationAt(time.Now())
}

func (e *Experience) durationAt(now time.Time) string {
	if e.StartDate == nil {
		return ""
	}
	end := now
	if e.EndDate != nil {
		end = *e.EndDate
	}

	months := (end.Year()-e.StartDate.Year())*12 + int(end.Month()) - int(e.StartDate.Month())
	if months < 0 {
		months = 0
	}
	years := months / 12
	remaining := months % 12

	switch {
	case years > 0 && remaining > 0:
		return fmt.Sprintf("%dy %dm", years, remaining)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", remaining)
	}
}
