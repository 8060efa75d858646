package domain

import "time"

// BlackoutPeriod disallows booking for its time range regardless of
// operating windows. BarberID nil means the blackout applies to every
// barber.
type BlackoutPeriod struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BarberID  *int64    `json:"barber_id,omitempty"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// AppliesTo reports whether the blackout constrains the given barber.
func (b BlackoutPeriod) AppliesTo(barberID int64) bool {
	return b.BarberID == nil || *b.BarberID == barberID
}
