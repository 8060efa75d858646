package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

type ServiceRepository struct {
	db        *gorm.DB
	bootstrap *Bootstrap
}

func NewServiceRepository(db *gorm.DB, bootstrap *Bootstrap) *ServiceRepository {
	return &ServiceRepository{db: db, bootstrap: bootstrap}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	if err := r.bootstrap.Ensure(ctx); err != nil {
		return nil, err
	}
	var out []domain.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *ServiceRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	if err := r.bootstrap.Ensure(ctx); err != nil {
		return nil, err
	}
	var s domain.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// UpdateNamePrice edits the mutable fields. Duration is deliberately not
// updatable: appointments already booked against the service depend on it.
func (r *ServiceRepository) UpdateNamePrice(ctx context.Context, id int64, name string, priceCents int64) (*domain.Service, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"name": name, "price_cents": priceCents})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetActiveByID(ctx, id)
}

// Deactivate soft-deletes a service; past appointments keep referencing it.
func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
