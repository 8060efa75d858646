package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	args := m.Called(ctx, svc)
	if svc != nil && args.Error(0) == nil {
		svc.ID = 11
	}
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateNamePrice(ctx context.Context, id int64, name string, priceCents int64) (*domain.Service, error) {
	args := m.Called(ctx, id, name, priceCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBarberRepository struct {
	mock.Mock
}

func (m *MockBarberRepository) ListActive(ctx context.Context) ([]domain.Barber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Barber), args.Error(1)
}

func TestService_CreateService_StampsDefaultDuration(t *testing.T) {
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockBarberRepository), 45)

	services.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateService(context.Background(), CreateServiceRequest{
		Name:       "Corte + Barba",
		PriceCents: 7000,
	})

	require.NoError(t, err)
	assert.Equal(t, 45, created.DurationMinutes)
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(11), created.ID)
}

func TestService_CreateService_Validation(t *testing.T) {
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockBarberRepository), 45)

	_, err := svc.CreateService(context.Background(), CreateServiceRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateService(context.Background(), CreateServiceRequest{Name: "Corte", PriceCents: -1})
	assert.ErrorIs(t, err, ErrValidation)

	services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateService(t *testing.T) {
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockBarberRepository), 45)

	services.On("UpdateNamePrice", mock.Anything, int64(11), "Corte", int64(5000)).
		Return(&domain.Service{ID: 11, Name: "Corte", PriceCents: 5000, DurationMinutes: 45}, nil)
	services.On("UpdateNamePrice", mock.Anything, int64(404), "Corte", int64(5000)).
		Return(nil, repository.ErrNotFound)

	updated, err := svc.UpdateService(context.Background(), 11, UpdateServiceRequest{Name: "Corte", PriceCents: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), updated.PriceCents)

	_, err = svc.UpdateService(context.Background(), 404, UpdateServiceRequest{Name: "Corte", PriceCents: 5000})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteService_NotFound(t *testing.T) {
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockBarberRepository), 45)

	services.On("Deactivate", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	err := svc.DeleteService(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Listings(t *testing.T) {
	services := new(MockServiceRepository)
	barbers := new(MockBarberRepository)
	svc := NewService(services, barbers, 45)

	services.On("ListActive", mock.Anything).Return([]domain.Service{{ID: 1, Name: "Corte"}}, nil)
	barbers.On("ListActive", mock.Anything).Return([]domain.Barber{{ID: 1, Name: "Carlos"}}, nil)

	got, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	people, err := svc.ListBarbers(context.Background())
	require.NoError(t, err)
	assert.Len(t, people, 1)
}
