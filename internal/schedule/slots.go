package schedule

import (
	"time"

	"barbershop/internal/domain"
)

// SlotParams carries everything GenerateSlots needs. The computation is
// pure: it performs no I/O and is deterministic given the params and Now.
type SlotParams struct {
	// Date is the target day at midnight in the business timezone.
	Date     time.Time
	BarberID int64

	ServiceDuration time.Duration
	// Buffer is the mandatory gap reserved after every appointment; it is
	// added to each candidate's end before conflict checks.
	Buffer time.Duration
	// Step is the interval between candidate start times.
	Step time.Duration

	// Windows are the merged open ranges for Date's weekday.
	Windows []TimeRange
	// Appointments are the barber's non-cancelled appointments that may
	// intersect the day.
	Appointments []domain.Appointment
	// Blackouts are the blackout periods covering the day; entries scoped
	// to another barber are ignored.
	Blackouts []domain.BlackoutPeriod

	// FitWithinClose selects the boundary policy: when true a slot is only
	// offered if start+ServiceDuration stays within the window's close;
	// when false any cursor strictly below close is offered, even if the
	// service runs past closing.
	FitWithinClose bool

	// Now is the current instant; candidates starting before it are
	// discarded.
	Now time.Time
}

// GenerateSlots walks each merged window at Step increments and emits the
// surviving candidates in chronological order. The returned slice is never
// nil: a closed or fully booked day yields an empty list.
func GenerateSlots(p SlotParams) []domain.AvailableSlot {
	slots := []domain.AvailableSlot{}
	// the cursor advances in whole minutes, so a sub-minute step would
	// truncate to zero and never move
	if p.Step < time.Minute || p.ServiceDuration <= 0 {
		return slots
	}

	for _, w := range p.Windows {
		openMin, err := ParseClock(w.Open)
		if err != nil {
			continue
		}
		closeMin, err := ParseClock(w.Close)
		if err != nil {
			continue
		}

		for cur := openMin; cur < closeMin; cur += int(p.Step.Minutes()) {
			if p.FitWithinClose && cur+int(p.ServiceDuration.Minutes()) > closeMin {
				break
			}

			start := p.Date.Add(time.Duration(cur) * time.Minute)
			end := start.Add(p.ServiceDuration + p.Buffer)

			if start.Before(p.Now) {
				continue
			}
			if conflictsWithAppointments(start, end, p.Appointments) {
				continue
			}
			if conflictsWithBlackouts(start, end, p.BarberID, p.Blackouts) {
				continue
			}

			slots = append(slots, domain.AvailableSlot{
				Start: start,
				End:   end,
				Label: FormatClock(cur),
			})
		}
	}
	return slots
}

func conflictsWithAppointments(start, end time.Time, appts []domain.Appointment) bool {
	for _, a := range appts {
		if a.Status == domain.AppointmentCancelled {
			continue
		}
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			return true
		}
	}
	return false
}

func conflictsWithBlackouts(start, end time.Time, barberID int64, blackouts []domain.BlackoutPeriod) bool {
	for _, b := range blackouts {
		if !b.AppliesTo(barberID) {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
