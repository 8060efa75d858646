package availability

import (
	"time"

	"barbershop/internal/schedule"
)

type ReplaceWindowsRequest struct {
	Ranges []schedule.TimeRange `json:"ranges"`
}

type CreateBlackoutRequest struct {
	BarberID *int64    `json:"barber_id,omitempty"`
	Start    time.Time `json:"start" binding:"required"`
	End      time.Time `json:"end" binding:"required"`
	Reason   string    `json:"reason"`
}
