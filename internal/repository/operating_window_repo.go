package repository

import (
	"context"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

type OperatingWindowRepository struct {
	db *gorm.DB
}

func NewOperatingWindowRepository(db *gorm.DB) *OperatingWindowRepository {
	return &OperatingWindowRepository{db: db}
}

// ListForBarber returns the raw (uncoalesced) weekly configuration.
func (r *OperatingWindowRepository) ListForBarber(ctx context.Context, barberID int64) ([]domain.OperatingWindow, error) {
	var out []domain.OperatingWindow
	err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC, open ASC").
		Find(&out).Error
	return out, err
}

// ReplaceDay swaps a weekday's configuration wholesale: the old rows go,
// the validated new ones come in, atomically.
func (r *OperatingWindowRepository) ReplaceDay(ctx context.Context, barberID int64, weekday int, rows []domain.OperatingWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ? AND weekday = ?", barberID, weekday).
			Delete(&domain.OperatingWindow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
