package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// ContactRepository defines contact persistence operations. Contacts are
// append-only; there is no update or delete.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create creates a new contact submission.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// List returns all contact submissions, newest first.
func (r *contactRepository) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
