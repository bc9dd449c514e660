package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create creates a new admin record.
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

// FindByUsername finds an admin by username.
func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
