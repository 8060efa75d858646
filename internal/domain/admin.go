package domain

import "time"

// AdminUser is the single administrative account gating the console
// routes. Lives in an optional table; see database.Capabilities.
type AdminUser struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
