package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the persisted appointment states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a booked time range against a barber.
// EndTime is always StartTime + service duration + the business buffer,
// so conflict checks work on [StartTime, EndTime) directly.
type Appointment struct {
	ID            int64             `json:"id" gorm:"primaryKey"`
	BarberID      int64             `json:"barber_id" validate:"required"`
	ServiceID     int64             `json:"service_id" validate:"required"`
	CustomerName  string            `json:"customer_name" validate:"required"`
	CustomerPhone string            `json:"customer_phone" validate:"required"`
	StartTime     time.Time         `json:"start_time" validate:"required"`
	EndTime       time.Time         `json:"end_time" validate:"required"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Barber  *Barber  `json:"barber,omitempty" gorm:"foreignKey:BarberID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}
