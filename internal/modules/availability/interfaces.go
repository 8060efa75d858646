package availability

import (
	"context"
	"time"

	"barbershop/internal/domain"
)

// WindowRepository stores the raw weekly operating configuration.
type WindowRepository interface {
	ListForBarber(ctx context.Context, barberID int64) ([]domain.OperatingWindow, error)
	ReplaceDay(ctx context.Context, barberID int64, weekday int, rows []domain.OperatingWindow) error
}

// BlackoutRepository stores explicit booking blackouts.
type BlackoutRepository interface {
	Create(ctx context.Context, b *domain.BlackoutPeriod) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.BlackoutPeriod, error)
	ListIntersecting(ctx context.Context, start, end time.Time) ([]domain.BlackoutPeriod, error)
}

// BarberCatalog checks that windows are configured for a real barber.
type BarberCatalog interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Barber, error)
}
