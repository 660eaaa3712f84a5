package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tukangku/server/internal/pkg/middleware"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/payments"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// CreateOrder handles POST /bookings/payment/order
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	order, err := h.paymentUC.CreateOrder(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order created", order)
}

// CaptureOrder handles POST /bookings/payment/capture
func (h *PaymentHandler) CaptureOrder(c echo.Context) error {
	customerID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CaptureOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	capture, err := h.paymentUC.CaptureOrder(c.Request().Context(), customerID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment captured", capture)
}

// ClientID handles GET /bookings/payment/client-id
func (h *PaymentHandler) ClientID(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Client id retrieved",
		map[string]string{"clientId": h.paymentUC.ClientID()})
}
