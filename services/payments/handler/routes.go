package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	handler_http "github.com/tukangku/server/services/payments/handler/http"
)

// Handler coordinates the payment service HTTP handlers
type Handler struct {
	paymentHandler *handler_http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all payment handlers
func NewHandler(paymentHandler *handler_http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	customerOnly := middleware.RequireRole(models.RoleCustomer)

	group := e.Group("/bookings/payment")
	group.GET("/client-id", h.paymentHandler.ClientID)
	group.POST("/order", h.paymentHandler.CreateOrder, auth, customerOnly)
	group.POST("/capture", h.paymentHandler.CaptureOrder, auth, customerOnly)
}
