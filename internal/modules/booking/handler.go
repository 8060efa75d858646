package booking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
	"barbershop/internal/pkg/response"
	"barbershop/internal/repository"
)

type Handler struct {
	service *Service
	loc     *time.Location
}

func NewHandler(service *Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.ListAvailableSlots)
	rg.POST("/appointments", h.CreateAppointment)
	rg.GET("/appointments", h.ListByPhone)
	rg.POST("/appointments/:id/cancel", h.CancelOwn)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/appointments", h.ListAdmin)
	rg.GET("/appointments/:id", h.GetAppointment)
	rg.PATCH("/appointments/:id/status", h.SetStatus)
}

func (h *Handler) ListAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	serviceID, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "service_id is required")
		return
	}
	barberID, _ := strconv.ParseInt(c.Query("barber_id"), 10, 64)

	slots, err := h.service.ListAvailableSlots(c.Request.Context(), date, barberID, serviceID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) ListByPhone(c *gin.Context) {
	phone := c.Query("phone")
	appts, err := h.service.ListByCustomerPhone(c.Request.Context(), phone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": appts})
}

func (h *Handler) CancelOwn(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}
	var req CancelOwnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.CancelOwn(c.Request.Context(), id, req.CustomerPhone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) ListAdmin(c *gin.Context) {
	f := repository.ListFilters{
		Status: domain.AppointmentStatus(c.Query("status")),
	}
	f.BarberID, _ = strconv.ParseInt(c.Query("barber_id"), 10, 64)
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, h.loc)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
			return
		}
		f.Day = &day
	}

	appts, err := h.service.ListAdmin(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": appts})
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}

	a, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.SetStatus(c.Request.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case ErrSlotConflict:
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "This time was just taken, choose another")
	case ErrSlotBlocked:
		response.Error(c, http.StatusConflict, "SLOT_BLOCKED", "This time is blocked for booking")
	case ErrUnauthorized:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot modify this appointment")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
	case ErrStorageUnavailable:
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Try again shortly")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
	}
}
