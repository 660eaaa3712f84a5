package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	handler_http "github.com/tukangku/server/services/bookings/handler/http"
)

// Handler coordinates the booking service HTTP handlers
type Handler struct {
	bookingHandler *handler_http.BookingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all booking handlers
func NewHandler(bookingHandler *handler_http.BookingHandler, cfg *models.Config) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the booking service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	customerOnly := middleware.RequireRole(models.RoleCustomer)
	providerOnly := middleware.RequireRole(models.RoleProvider)

	group := e.Group("/bookings", auth)
	group.POST("", h.bookingHandler.Create, customerOnly)
	group.POST("/list", h.bookingHandler.List)
	group.GET("/stats", h.bookingHandler.Stats)
	group.PUT("/:id/status", h.bookingHandler.Transition, providerOnly)
	group.DELETE("/:id", h.bookingHandler.Delete, customerOnly)
	group.POST("/rate", h.bookingHandler.Rate, customerOnly)
}
