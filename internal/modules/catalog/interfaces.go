package catalog

import (
	"context"

	"barbershop/internal/domain"
)

type ServiceRepository interface {
	ListActive(ctx context.Context) ([]domain.Service, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	UpdateNamePrice(ctx context.Context, id int64, name string, priceCents int64) (*domain.Service, error)
	Deactivate(ctx context.Context, id int64) error
}

type BarberRepository interface {
	ListActive(ctx context.Context) ([]domain.Barber, error)
}
