package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

type BarberRepository struct {
	db        *gorm.DB
	bootstrap *Bootstrap
}

func NewBarberRepository(db *gorm.DB, bootstrap *Bootstrap) *BarberRepository {
	return &BarberRepository{db: db, bootstrap: bootstrap}
}

func (r *BarberRepository) ListActive(ctx context.Context) ([]domain.Barber, error) {
	if err := r.bootstrap.Ensure(ctx); err != nil {
		return nil, err
	}
	var out []domain.Barber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *BarberRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Barber, error) {
	if err := r.bootstrap.Ensure(ctx); err != nil {
		return nil, err
	}
	var b domain.Barber
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// DefaultBarberID returns the first active barber, the fallback used when
// the booking flow does not pick one explicitly.
func (r *BarberRepository) DefaultBarberID(ctx context.Context) (int64, error) {
	if err := r.bootstrap.Ensure(ctx); err != nil {
		return 0, err
	}
	var b domain.Barber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return b.ID, nil
}
