package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/services/bookings/mocks"
)

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID uuid.UUID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c
}

func TestBookingHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	customerID := uuid.New()
	providerID := uuid.New()

	mockBookingUC.EXPECT().
		CreateBooking(gomock.Any(), customerID, gomock.Any()).
		Return(&models.Booking{
			ID:         uuid.New(),
			CustomerID: customerID,
			ProviderID: providerID,
			Services:   []string{"plumbing"},
			Status:     models.BookingStatusPending,
		}, nil)

	e := echo.New()
	requestBody := `{"providerId":"` + providerID.String() + `","services":["plumbing"]}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, customerID, models.RoleCustomer)

	err := bookingHandler.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestBookingHandler_Create_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := bookingHandler.Create(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	mockBookingUC.EXPECT().
		ListBookings(gomock.Any(), userID, models.RoleProvider, "pending").
		Return([]models.BookingListItem{{BookingID: uuid.New(), Status: "pending"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/bookings/list", strings.NewReader(`{"status":"pending"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, userID, models.RoleProvider)

	err := bookingHandler.List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Len(t, response["data"], 1)
}

func TestBookingHandler_Transition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	providerID := uuid.New()
	bookingID := uuid.New()

	mockBookingUC.EXPECT().
		TransitionStatus(gomock.Any(), providerID, bookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *models.TransitionRequest) (*models.Booking, error) {
			assert.Equal(t, models.BookingStatusAccepted, req.Status)
			require.NotNil(t, req.TimeSlot)
			assert.Equal(t, "2026-09-05", req.TimeSlot.Date)
			return &models.Booking{ID: bookingID, Status: models.BookingStatusAccepted}, nil
		})

	e := echo.New()
	requestBody := `{"status":"accepted","timeSlot":{"date":"2026-09-05","time":"10:00"}}`
	req := httptest.NewRequest(http.MethodPut, "/bookings/"+bookingID.String()+"/status", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, providerID, models.RoleProvider)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.String())

	err := bookingHandler.Transition(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_Transition_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/bookings/nope/status", strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, uuid.New(), models.RoleProvider)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := bookingHandler.Transition(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_Delete_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	customerID := uuid.New()
	bookingID := uuid.New()

	mockBookingUC.EXPECT().
		DeleteBooking(gomock.Any(), customerID, bookingID).
		Return(apperr.Conflict("not_pending", "only pending bookings can be deleted"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+bookingID.String(), nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, customerID, models.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.String())

	err := bookingHandler.Delete(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingHandler_Rate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	customerID := uuid.New()
	bookingID := uuid.New()
	rating := 5

	mockBookingUC.EXPECT().
		SubmitRating(gomock.Any(), customerID, gomock.Any()).
		Return(&models.Booking{ID: bookingID, Rating: &rating}, nil)

	e := echo.New()
	requestBody := `{"bookingId":"` + bookingID.String() + `","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/bookings/rate", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, customerID, models.RoleCustomer)

	err := bookingHandler.Rate(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingUC := mocks.NewMockBookingUC(ctrl)
	bookingHandler := NewBookingHandler(mockBookingUC)

	userID := uuid.New()
	mockBookingUC.EXPECT().
		Stats(gomock.Any(), userID, models.RoleCustomer).
		Return(&models.BookingStats{Total: 3, Pending: 1}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings/stats", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, userID, models.RoleCustomer)

	err := bookingHandler.Stats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
