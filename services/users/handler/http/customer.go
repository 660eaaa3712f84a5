package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/users"
)

// CustomerHandler handles customer-facing HTTP requests
type CustomerHandler struct {
	userUC users.UserUC
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(userUC users.UserUC) *CustomerHandler {
	return &CustomerHandler{userUC: userUC}
}

// UpdateProfile handles PUT /customers/profile
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
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
