package domain

import "time"

// Service is a catalog entry. Duration is fixed at creation time: name and
// price may be edited later, the duration of an already bookable service
// may not.
type Service struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	PriceCents      int64     `json:"price_cents" validate:"gte=0"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
