package availability

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/internal/schedule"
)

type Service struct {
	windows   WindowRepository
	blackouts BlackoutRepository
	barbers   BarberCatalog
}

func NewService(windows WindowRepository, blackouts BlackoutRepository, barbers BarberCatalog) *Service {
	return &Service{windows: windows, blackouts: blackouts, barbers: barbers}
}

// ReplaceDayWindows fully replaces a barber's configuration for one
// weekday. Overlapping input ranges are rejected up front; coalescing is
// the read path's job, silently merging admin input would hide mistakes.
// The merged view is returned for display.
func (s *Service) ReplaceDayWindows(ctx context.Context, barberID int64, weekday int, ranges []schedule.TimeRange) ([]schedule.TimeRange, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrValidation
	}
	if _, err := s.barbers.GetActiveByID(ctx, barberID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	normalized := make([]schedule.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		normalized = append(normalized, schedule.TimeRange{
			Open:  schedule.NormalizeClock(r.Open),
			Close: schedule.NormalizeClock(r.Close),
		})
	}
	if err := schedule.ValidateRanges(normalized); err != nil {
		return nil, ErrValidation
	}

	rows := make([]domain.OperatingWindow, 0, len(normalized))
	for _, r := range normalized {
		rows = append(rows, domain.OperatingWindow{
			BarberID: barberID,
			Weekday:  weekday,
			Open:     r.Open,
			Close:    r.Close,
		})
	}
	if err := s.windows.ReplaceDay(ctx, barberID, weekday, rows); err != nil {
		return nil, err
	}
	return schedule.MergeRanges(normalized), nil
}

// ResolveWindows returns the merged open ranges for admin display.
func (s *Service) ResolveWindows(ctx context.Context, barberID int64, weekday int) ([]schedule.TimeRange, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrValidation
	}
	rows, err := s.windows.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	return schedule.WindowsForWeekday(rows, weekday), nil
}

func (s *Service) CreateBlackout(ctx context.Context, req CreateBlackoutRequest) (*domain.BlackoutPeriod, error) {
	if !req.End.After(req.Start) {
		return nil, ErrValidation
	}
	if req.BarberID != nil {
		if _, err := s.barbers.GetActiveByID(ctx, *req.BarberID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	b := &domain.BlackoutPeriod{
		BarberID:  req.BarberID,
		StartTime: req.Start,
		EndTime:   req.End,
		Reason:    strings.TrimSpace(req.Reason),
	}
	if err := s.blackouts.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBlackouts returns every blackout, or only those intersecting the
// given day when one is supplied.
func (s *Service) ListBlackouts(ctx context.Context, day *time.Time) ([]domain.BlackoutPeriod, error) {
	if day == nil {
		return s.blackouts.ListAll(ctx)
	}
	return s.blackouts.ListIntersecting(ctx, *day, day.Add(24*time.Hour))
}

func (s *Service) DeleteBlackout(ctx context.Context, id int64) error {
	err := s.blackouts.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
