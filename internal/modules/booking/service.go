package booking

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/internal/schedule"
)

// Config carries the fixed business constants the scheduling core works
// with.
type Config struct {
	SlotInterval   time.Duration
	Buffer         time.Duration
	FitWithinClose bool
	Location       *time.Location
	// StorageTimeout bounds every data-store call; an exceeded deadline
	// surfaces as ErrStorageUnavailable, never as a partial appointment.
	StorageTimeout time.Duration
}

type Service struct {
	appointments AppointmentRepository
	services     ServiceCatalog
	barbers      BarberCatalog
	blackouts    BlackoutSource
	windows      WindowSource
	cfg          Config

	now func() time.Time
}

func NewService(
	appointments AppointmentRepository,
	services ServiceCatalog,
	barbers BarberCatalog,
	blackouts BlackoutSource,
	windows WindowSource,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		appointments: appointments,
		services:     services,
		barbers:      barbers,
		blackouts:    blackouts,
		windows:      windows,
		cfg:          cfg,
		now:          time.Now,
	}
}

// ListAvailableSlots computes the bookable start times for a day. A closed
// or fully booked day yields an empty slice, not an error; an unknown
// service or barber is a validation failure.
func (s *Service) ListAvailableSlots(ctx context.Context, date string, barberID, serviceID int64) ([]domain.AvailableSlot, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.cfg.Location)
	if err != nil {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	svc, err := s.services.GetActiveByID(ctx, serviceID)
	if err != nil {
		return nil, s.mapLookupErr(err)
	}

	barberID, err = s.resolveBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	rows, err := s.windows.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	windows := schedule.WindowsForWeekday(rows, int(day.Weekday()))
	if len(windows) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute

	// candidates may extend past the nominal day end by duration+buffer,
	// so the conflict queries reach that far too
	dayEnd := day.Add(24*time.Hour + duration + s.cfg.Buffer)

	appts, err := s.appointments.ListOverlapping(ctx, barberID, day, dayEnd)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	blackouts, err := s.blackouts.ListIntersecting(ctx, day, dayEnd)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	return schedule.GenerateSlots(schedule.SlotParams{
		Date:            day,
		BarberID:        barberID,
		ServiceDuration: duration,
		Buffer:          s.cfg.Buffer,
		Step:            s.cfg.SlotInterval,
		Windows:         windows,
		Appointments:    appts,
		Blackouts:       blackouts,
		FitWithinClose:  s.cfg.FitWithinClose,
		Now:             s.now().In(s.cfg.Location),
	}), nil
}

// CreateAppointment is the authoritative write path. The availability the
// customer saw is a best-effort snapshot; this re-validates against
// current appointments and blackouts and persists only if both checks
// pass, with at-most-one-winner semantics for concurrent overlapping
// attempts (see repository.AppointmentRepository.CreateIfFree).
func (s *Service) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if strings.TrimSpace(req.CustomerName) == "" || normalizePhone(req.CustomerPhone) == "" {
		return nil, ErrValidation
	}
	if req.Start.IsZero() || req.Start.Before(s.now()) {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	svc, err := s.services.GetActiveByID(ctx, req.ServiceID)
	if err != nil {
		return nil, s.mapLookupErr(err)
	}
	if svc.DurationMinutes <= 0 {
		return nil, ErrValidation
	}

	barberID, err := s.resolveBarber(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}

	start := req.Start.In(s.cfg.Location)
	end := start.Add(time.Duration(svc.DurationMinutes)*time.Minute + s.cfg.Buffer)

	conflicts, err := s.appointments.ListOverlapping(ctx, barberID, start, end)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotConflict
	}

	blackouts, err := s.blackouts.ListIntersecting(ctx, start, end)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	for _, b := range blackouts {
		if b.AppliesTo(barberID) && schedule.Overlaps(start, end, b.StartTime, b.EndTime) {
			return nil, ErrSlotBlocked
		}
	}

	a := &domain.Appointment{
		BarberID:      barberID,
		ServiceID:     svc.ID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: req.CustomerPhone,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.AppointmentPending,
	}
	if err := s.appointments.CreateIfFree(ctx, a); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrSlotConflict
		}
		return nil, mapStorageErr(err)
	}
	return a, nil
}

// GetAppointment loads a single appointment for the admin console.
func (s *Service) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapStorageErr(err)
	}
	return a, nil
}

// SetStatus is the administrator transition; it only checks that the
// target status is a real one and that the appointment exists.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	a, err := s.appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapStorageErr(err)
	}
	return a, nil
}

// CancelOwn cancels the customer's own appointment, matched by normalized
// phone. Cancelling an already cancelled appointment is a no-op success.
func (s *Service) CancelOwn(ctx context.Context, id int64, callerPhone string) (*domain.Appointment, error) {
	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapStorageErr(err)
	}

	if normalizePhone(a.CustomerPhone) != normalizePhone(callerPhone) {
		return nil, ErrUnauthorized
	}
	if a.Status == domain.AppointmentCancelled {
		return a, nil
	}

	updated, err := s.appointments.UpdateStatus(ctx, id, domain.AppointmentCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapStorageErr(err)
	}
	return updated, nil
}

// ListByCustomerPhone returns the customer's appointments, matched by
// normalized phone. Normalization strips formatting, so the comparison
// happens here rather than in SQL.
func (s *Service) ListByCustomerPhone(ctx context.Context, phone string) ([]domain.Appointment, error) {
	wanted := normalizePhone(phone)
	if wanted == "" {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	all, err := s.appointments.List(ctx, repository.ListFilters{})
	if err != nil {
		return nil, mapStorageErr(err)
	}

	out := make([]domain.Appointment, 0)
	for _, a := range all {
		if normalizePhone(a.CustomerPhone) == wanted {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListAdmin returns appointments for the admin console, optionally
// filtered by barber, status and day.
func (s *Service) ListAdmin(ctx context.Context, f repository.ListFilters) ([]domain.Appointment, error) {
	if f.Status != "" && !domain.ValidStatus(f.Status) {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	out, err := s.appointments.List(ctx, f)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return out, nil
}

// ResolveWindows returns the merged open ranges for a barber's weekday.
// Consumed by the slot generator and shown standalone on the admin screen.
func (s *Service) ResolveWindows(ctx context.Context, barberID int64, weekday int) ([]schedule.TimeRange, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrValidation
	}

	ctx, cancel := s.storageCtx(ctx)
	defer cancel()

	barberID, err := s.resolveBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}
	rows, err := s.windows.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return schedule.WindowsForWeekday(rows, weekday), nil
}

func (s *Service) resolveBarber(ctx context.Context, barberID int64) (int64, error) {
	if barberID == 0 {
		id, err := s.barbers.DefaultBarberID(ctx)
		if err != nil {
			return 0, s.mapLookupErr(err)
		}
		return id, nil
	}
	if _, err := s.barbers.GetActiveByID(ctx, barberID); err != nil {
		return 0, s.mapLookupErr(err)
	}
	return barberID, nil
}

func (s *Service) storageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StorageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.StorageTimeout)
}

// mapLookupErr turns a missing catalog entity into a validation failure:
// the caller referenced a service or barber that does not exist.
func (s *Service) mapLookupErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrValidation
	}
	return mapStorageErr(err)
}

func mapStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageUnavailable
	}
	return err
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
