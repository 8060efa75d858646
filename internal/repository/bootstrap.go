package repository

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"barbershop/internal/domain"
)

// Bootstrap seeds the fallback barber and catalog when the backing store
// is empty, so a fresh deployment is bookable without manual setup. The
// seeding runs at most once per process and only behind the catalog
// lookups, never scattered through read paths.
type Bootstrap struct {
	db              *gorm.DB
	defaultDuration int
	once            sync.Once
	err             error
}

func NewBootstrap(db *gorm.DB, defaultDurationMinutes int) *Bootstrap {
	return &Bootstrap{db: db, defaultDuration: defaultDurationMinutes}
}

// Ensure performs the lazy one-time seeding.
func (b *Bootstrap) Ensure(ctx context.Context) error {
	b.once.Do(func() {
		b.err = b.seed(ctx)
	})
	return b.err
}

func (b *Bootstrap) seed(ctx context.Context) error {
	db := b.db.WithContext(ctx)

	var barbers int64
	if err := db.Model(&domain.Barber{}).Count(&barbers).Error; err != nil {
		return err
	}
	if barbers == 0 {
		if err := db.Create(&domain.Barber{Name: "Carlos", IsActive: true}).Error; err != nil {
			return err
		}
	}

	var services int64
	if err := db.Model(&domain.Service{}).Count(&services).Error; err != nil {
		return err
	}
	if services == 0 {
		defaults := []domain.Service{
			{Name: "Corte", DurationMinutes: b.defaultDuration, PriceCents: 4500, IsActive: true},
			{Name: "Barba", DurationMinutes: b.defaultDuration, PriceCents: 3500, IsActive: true},
			{Name: "Corte + Barba", DurationMinutes: b.defaultDuration, PriceCents: 7000, IsActive: true},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}
	return nil
}
