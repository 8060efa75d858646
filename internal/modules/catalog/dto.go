package catalog

type CreateServiceRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,min=2"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
}

type UpdateServiceRequest struct {
	Name       string `json:"name" binding:"required" validate:"required,min=2"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
}
