package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentPurger struct {
	mock.Mock
}

func (m *MockAppointmentPurger) DeleteCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockBlackoutPurger struct {
	mock.Mock
}

func (m *MockBlackoutPurger) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestCleanup_Run(t *testing.T) {
	appointments := new(MockAppointmentPurger)
	blackouts := new(MockBlackoutPurger)

	appointments.On("DeleteCancelledBefore", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		// 90 day retention, allow slack for test runtime
		want := time.Now().AddDate(0, 0, -90)
		return cutoff.Sub(want).Abs() < time.Minute
	})).Return(int64(3), nil)
	blackouts.On("DeleteEndedBefore", mock.Anything, mock.Anything).Return(int64(1), nil)

	NewCleanup(appointments, blackouts, 90, zap.NewNop()).Run()

	appointments.AssertExpectations(t)
	blackouts.AssertExpectations(t)
}

func TestCleanup_Run_PurgeErrorDoesNotStopBlackouts(t *testing.T) {
	appointments := new(MockAppointmentPurger)
	blackouts := new(MockBlackoutPurger)

	appointments.On("DeleteCancelledBefore", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("db down"))
	blackouts.On("DeleteEndedBefore", mock.Anything, mock.Anything).Return(int64(0), nil)

	NewCleanup(appointments, blackouts, 90, zap.NewNop()).Run()

	blackouts.AssertExpectations(t)
}

func TestCleanup_Schedule(t *testing.T) {
	c := NewCleanup(new(MockAppointmentPurger), new(MockBlackoutPurger), 90, zap.NewNop())

	assert.NoError(t, c.Schedule(cron.New()))
}
