package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

type BlackoutRepository struct {
	db *gorm.DB
}

func NewBlackoutRepository(db *gorm.DB) *BlackoutRepository {
	return &BlackoutRepository{db: db}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *domain.BlackoutPeriod) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlackoutRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.BlackoutPeriod{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListIntersecting returns blackout periods whose interval intersects
// [start, end), global ones included.
func (r *BlackoutRepository) ListIntersecting(ctx context.Context, start, end time.Time) ([]domain.BlackoutPeriod, error) {
	var out []domain.BlackoutPeriod
	err := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time > ?", end, start).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

// ListAll returns every blackout period, newest first, for the admin
// console.
func (r *BlackoutRepository) ListAll(ctx context.Context) ([]domain.BlackoutPeriod, error) {
	var out []domain.BlackoutPeriod
	err := r.db.WithContext(ctx).
		Order("start_time DESC").
		Find(&out).Error
	return out, err
}

// DeleteEndedBefore purges blackouts fully in the past. Used by the
// cleanup job.
func (r *BlackoutRepository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("end_time < ?", cutoff).
		Delete(&domain.BlackoutPeriod{})
	return tx.RowsAffected, tx.Error
}
