package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	handler_http "github.com/tukangku/server/services/users/handler/http"
)

// Handler coordinates the user service HTTP handlers
type Handler struct {
	authHandler     *handler_http.AuthHandler
	providerHandler *handler_http.ProviderHandler
	customerHandler *handler_http.CustomerHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all user handlers
func NewHandler(
	authHandler *handler_http.AuthHandler,
	providerHandler *handler_http.ProviderHandler,
	customerHandler *handler_http.CustomerHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:     authHandler,
		providerHandler: providerHandler,
		customerHandler: customerHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers the user service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	customerOnly := middleware.RequireRole(models.RoleCustomer)
	providerOnly := middleware.RequireRole(models.RoleProvider)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/contact", h.authHandler.Contact)
	authGroup.GET("/logout", h.authHandler.Logout, auth)
	authGroup.GET("/me", h.authHandler.Me, auth)
	authGroup.GET("/role", h.authHandler.Role, auth)

	providers := e.Group("/providers")
	providers.GET("/nearby", h.providerHandler.Nearby, auth, customerOnly)
	providers.GET("/:id", h.providerHandler.GetByID)
	providers.PUT("/profile", h.providerHandler.UpdateProfile, auth, providerOnly)
	providers.POST("/services", h.providerHandler.AddService, auth, providerOnly)
	providers.PUT("/services", h.providerHandler.UpdateService, auth, providerOnly)
	providers.DELETE("/services", h.providerHandler.DeleteService, auth, providerOnly)

	customers := e.Group("/customers", auth, customerOnly)
	customers.PUT("/profile", h.customerHandler.UpdateProfile)
}
