package booking

import (
	"context"
	"time"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

// AppointmentRepository is what the booking service needs from storage.
type AppointmentRepository interface {
	CreateIfFree(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListOverlapping(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, error)
	List(ctx context.Context, f repository.ListFilters) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// ServiceCatalog resolves bookable services.
type ServiceCatalog interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
}

// BarberCatalog resolves barbers, with a fallback for requests that do not
// pick one explicitly.
type BarberCatalog interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Barber, error)
	DefaultBarberID(ctx context.Context) (int64, error)
}

// BlackoutSource lists blackout periods intersecting a time range.
type BlackoutSource interface {
	ListIntersecting(ctx context.Context, start, end time.Time) ([]domain.BlackoutPeriod, error)
}

// WindowSource lists a barber's raw weekly operating windows.
type WindowSource interface {
	ListForBarber(ctx context.Context, barberID int64) ([]domain.OperatingWindow, error)
}
