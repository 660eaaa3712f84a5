package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/users"
)

// ProviderHandler handles provider-facing HTTP requests
type ProviderHandler struct {
	userUC users.UserUC
}

// NewProviderHandler creates a new provider handler instance
func NewProviderHandler(userUC users.UserUC) *ProviderHandler {
	return &ProviderHandler{userUC: userUC}
}

// Nearby handles GET /providers/nearby
func (h *ProviderHandler) Nearby(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required")
	}

	providers, err := h.userUC.NearbyProviders(c.Request().Context(), customerID, lat, lng, c.QueryParam("service"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Providers retrieved", providers)
}

// GetByID handles GET /providers/:id
func (h *ProviderHandler) GetByID(c echo.Context) error {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid provider id")
	}

	provider, err := h.userUC.GetProvider(c.Request().Context(), providerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Provider retrieved", provider)
}

// UpdateProfile handles PUT /providers/profile
func (h *ProviderHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

// AddService handles POST /providers/services
func (h *ProviderHandler) AddService(c echo.Context) error {
	providerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ServicePairRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	catalog, err := h.userUC.AddServicePair(c.Request().Context(), providerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Service added", catalog)
}

// UpdateService handles PUT /providers/services
func (h *ProviderHandler) UpdateService(c echo.Context) error {
	providerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ServicePairRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	catalog, err := h.userUC.UpdateServicePair(c.Request().Context(), providerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service updated", catalog)
}

// DeleteService handles DELETE /providers/services
func (h *ProviderHandler) DeleteService(c echo.Context) error {
	providerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	position, err := strconv.Atoi(c.QueryParam("position"))
	if err != nil {
		return utils.BadRequestResponse(c, "position is required")
	}

	catalog, err := h.userUC.DeleteServicePair(c.Request().Context(), providerID, position)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Service removed", catalog)
}
