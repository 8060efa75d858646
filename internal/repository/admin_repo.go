package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}
