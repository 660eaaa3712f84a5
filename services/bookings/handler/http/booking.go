package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/bookings"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler instance
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// List handles POST /bookings/list
func (h *BookingHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ListBookingsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	items, err := h.bookingUC.ListBookings(c.Request().Context(), userID, middleware.UserRole(c), req.Status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", items)
}

// Stats handles GET /bookings/stats
func (h *BookingHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.bookingUC.Stats(c.Request().Context(), userID, middleware.UserRole(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", stats)
}

// Transition handles PUT /bookings/:id/status
func (h *BookingHandler) Transition(c echo.Context) error {
	providerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	booking, err := h.bookingUC.TransitionStatus(c.Request().Context(), providerID, bookingID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated", booking)
}

// Delete handles DELETE /bookings/:id
func (h *BookingHandler) Delete(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	if err := h.bookingUC.DeleteBooking(c.Request().Context(), customerID, bookingID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking deleted", nil)
}

// Rate handles POST /bookings/rate
func (h *BookingHandler) Rate(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RatingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	booking, err := h.bookingUC.SubmitRating(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rating submitted", booking)
}
