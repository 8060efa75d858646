package catalog

import (
	"context"
	"errors"

	"barbershop/internal/domain"
	"barbershop/internal/pkg/validator"
	"barbershop/internal/repository"
)

type Service struct {
	services ServiceRepository
	barbers  BarberRepository

	// defaultDuration is stamped onto every created service; there is no
	// edit path for duration once appointments may reference the service.
	defaultDuration int
}

func NewService(services ServiceRepository, barbers BarberRepository, defaultDurationMinutes int) *Service {
	return &Service{services: services, barbers: barbers, defaultDuration: defaultDurationMinutes}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) ListBarbers(ctx context.Context) ([]domain.Barber, error) {
	return s.barbers.ListActive(ctx)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	svc := &domain.Service{
		Name:            req.Name,
		DurationMinutes: s.defaultDuration,
		PriceCents:      req.PriceCents,
		IsActive:        true,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	svc, err := s.services.UpdateNamePrice(ctx, id, req.Name, req.PriceCents)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	err := s.services.Deactivate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
