package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AppointmentPurger deletes cancelled appointments past retention.
type AppointmentPurger interface {
	DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// BlackoutPurger deletes blackouts fully in the past.
type BlackoutPurger interface {
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleanup is the nightly housekeeping job. It never touches live rows:
// only cancelled appointments older than the retention window and
// blackouts that have fully elapsed.
type Cleanup struct {
	appointments  AppointmentPurger
	blackouts     BlackoutPurger
	retentionDays int
	log           *zap.Logger
}

func NewCleanup(appointments AppointmentPurger, blackouts BlackoutPurger, retentionDays int, log *zap.Logger) *Cleanup {
	return &Cleanup{
		appointments:  appointments,
		blackouts:     blackouts,
		retentionDays: retentionDays,
		log:           log,
	}
}

// Schedule registers the job on the given cron runner, daily at 03:30.
func (j *Cleanup) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("30 3 * * *", j.Run)
	return err
}

func (j *Cleanup) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()

	purged, err := j.appointments.DeleteCancelledBefore(ctx, now.AddDate(0, 0, -j.retentionDays))
	if err != nil {
		j.log.Error("cleanup: purge cancelled appointments", zap.Error(err))
	} else if purged > 0 {
		j.log.Info("cleanup: purged cancelled appointments", zap.Int64("count", purged))
	}

	expired, err := j.blackouts.DeleteEndedBefore(ctx, now)
	if err != nil {
		j.log.Error("cleanup: purge elapsed blackouts", zap.Error(err))
	} else if expired > 0 {
		j.log.Info("cleanup: purged elapsed blackouts", zap.Int64("count", expired))
	}
}
