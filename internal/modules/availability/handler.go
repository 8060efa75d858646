package availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"barbershop/internal/pkg/response"
)

type Handler struct {
	service *Service
	loc     *time.Location
}

func NewHandler(service *Service, loc *time.Location) *Handler {
	return &Handler{service: service, loc: loc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/barbers/:id/windows/:weekday", h.ResolveWindows)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/barbers/:id/windows/:weekday", h.ReplaceDayWindows)
	rg.GET("/blackouts", h.ListBlackouts)
	rg.POST("/blackouts", h.CreateBlackout)
	rg.DELETE("/blackouts/:id", h.DeleteBlackout)
}

func (h *Handler) ResolveWindows(c *gin.Context) {
	barberID, weekday, ok := pathParams(c)
	if !ok {
		return
	}
	windows, err := h.service.ResolveWindows(c.Request.Context(), barberID, weekday)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"windows": windows})
}

func (h *Handler) ReplaceDayWindows(c *gin.Context) {
	barberID, weekday, ok := pathParams(c)
	if !ok {
		return
	}
	var req ReplaceWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	windows, err := h.service.ReplaceDayWindows(c.Request.Context(), barberID, weekday, req.Ranges)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"windows": windows})
}

func (h *Handler) ListBlackouts(c *gin.Context) {
	var day *time.Time
	if date := c.Query("date"); date != "" {
		d, err := time.ParseInLocation("2006-01-02", date, h.loc)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
			return
		}
		day = &d
	}

	blackouts, err := h.service.ListBlackouts(c.Request.Context(), day)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blackouts": blackouts})
}

func (h *Handler) CreateBlackout(c *gin.Context) {
	var req CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlackout(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"blackout": b})
}

func (h *Handler) DeleteBlackout(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid blackout id")
		return
	}
	if err := h.service.DeleteBlackout(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func pathParams(c *gin.Context) (int64, int, bool) {
	barberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid barber id")
		return 0, 0, false
	}
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid weekday")
		return 0, 0, false
	}
	return barberID, weekday, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid availability request")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
	}
}
