package booking

import "time"

type CreateAppointmentRequest struct {
	BarberID      int64     `json:"barber_id"`
	ServiceID     int64     `json:"service_id" binding:"required"`
	Start         time.Time `json:"start" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
}

type CancelOwnRequest struct {
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
