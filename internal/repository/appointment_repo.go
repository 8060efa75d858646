package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"barbershop/internal/database"
	"barbershop/internal/domain"
)

// ErrOverlap is returned by CreateIfFree when the candidate interval
// collides with an existing non-cancelled appointment.
var ErrOverlap = errors.New("appointment interval overlaps an existing one")

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// lockClassBooking namespaces the per-barber advisory lock taken by the
// booking write path.
const lockClassBooking = 4217

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateIfFree re-checks the candidate interval against current
// non-cancelled appointments and inserts only if no overlap exists, all in
// one transaction. On PostgreSQL a per-barber advisory lock serializes
// concurrent attempts for the same barber, and the idx_no_double_booking
// exclusion constraint backstops the check at commit time; on sqlite the
// single-writer model gives the same at-most-one-winner guarantee.
func (r *AppointmentRepository) CreateIfFree(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if database.IsPostgres(tx) {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", lockClassBooking, a.BarberID).Error; err != nil {
				return err
			}
		}

		var cnt int64
		q := `
SELECT COUNT(1)
FROM appointments
WHERE barber_id = ?
  AND status <> 'cancelled'
  AND start_time < ?
  AND end_time > ?
`
		if err := tx.Raw(q, a.BarberID, a.EndTime, a.StartTime).Scan(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}

		if err := tx.Create(a).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
				return ErrOverlap
			}
			return err
		}
		return nil
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Barber").Preload("Service").
		First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListOverlapping returns the barber's non-cancelled appointments whose
// [start_time, end_time) interval intersects [start, end).
func (r *AppointmentRepository) ListOverlapping(ctx context.Context, barberID int64, start, end time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			barberID, domain.AppointmentCancelled, end, start).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

// ListFilters narrows the admin listing; zero values mean "any".
type ListFilters struct {
	BarberID int64
	Status   domain.AppointmentStatus
	// Day limits results to appointments starting within the given day.
	Day *time.Time
}

func (r *AppointmentRepository) List(ctx context.Context, f ListFilters) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).Preload("Barber").Preload("Service")
	if f.BarberID != 0 {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Day != nil {
		q = q.Where("start_time >= ? AND start_time < ?", *f.Day, f.Day.Add(24*time.Hour))
	}

	var out []domain.Appointment
	err := q.Order("start_time ASC").Find(&out).Error
	return out, err
}

// UpdateStatus sets the status and returns the updated row.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// DeleteCancelledBefore purges cancelled appointments whose end time is
// older than cutoff. Used by the retention cleanup job.
func (r *AppointmentRepository) DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ? AND end_time < ?", domain.AppointmentCancelled, cutoff).
		Delete(&domain.Appointment{})
	return tx.RowsAffected, tx.Error
}
