package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	switch err {
	case nil:
		response.Success(c, http.StatusOK, gin.H{"token": token})
	case ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
	case ErrUnavailable:
		response.Error(c, http.StatusServiceUnavailable, "ADMIN_DISABLED", "Admin console is not provisioned")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
	}
}
