package service

import (
	"context"
	"fmt"
	"strings"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// ContactInput carries a contact-form submission. All four fields are
// mandatory.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService handles contact-form submissions.
type ContactService interface {
	CreateContact(ctx context.Context, in ContactInput) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// CreateContact stores a submission after checking all fields are present.
// Nothing is stored when validation fails.
func (s *contactService) CreateContact(ctx context.Context, in ContactInput) (*model.Contact, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return nil, errors.ErrMissingContactFields
	}

	contact := &model.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

// ListContacts returns all submissions, newest first.
func (s *contactService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}
