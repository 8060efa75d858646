package domain

import "time"

// Barber is a schedulable resource appointments are booked against.
type Barber struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" validate:"required"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
