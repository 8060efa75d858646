package domain

import "time"

// OperatingWindow is one recurring weekly open range for a barber.
// Open and Close are zero-padded "HH:MM" wall-clock strings in the
// business timezone; the fixed width makes lexicographic comparison
// equivalent to chronological comparison. Several windows per weekday are
// allowed (split shifts) and may touch or overlap; reads coalesce them.
type OperatingWindow struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	BarberID int64  `json:"barber_id"`
	Weekday  int    `json:"weekday" validate:"gte=0,lte=6"`
	Open     string `json:"open" validate:"required"`
	Close    string `json:"close" validate:"required"`
}

// AvailableSlot is a derived bookable start time. It is computed fresh per
// request and never persisted.
type AvailableSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}
