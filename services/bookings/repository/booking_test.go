package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
)

var bookingTestColumns = []string{
	"id", "customer_id", "provider_id", "services", "status",
	"time_slot_date", "time_slot_time", "rating", "paid",
	"payment_method", "payment_transaction_id", "payment_amount", "payment_currency", "paid_at",
	"created_at", "updated_at",
}

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBookingRepository(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func pendingBookingRow(bookingID, customerID, providerID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows(bookingTestColumns).
		AddRow(bookingID, customerID, providerID, `["plumbing"]`, "pending",
			nil, nil, nil, false,
			nil, nil, nil, nil, nil,
			time.Now(), time.Now())
}

func TestBookingRepo_CreateBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	booking := &models.Booking{
		CustomerID: uuid.New(),
		ProviderID: uuid.New(),
		Services:   []string{"plumbing", "electrical"},
		Status:     models.BookingStatusPending,
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), booking.CustomerID, booking.ProviderID,
			`["plumbing","electrical"]`, "pending", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateBooking(context.Background(), booking)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_GetBooking(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	customerID := uuid.New()
	providerID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRow(bookingID, customerID, providerID))

	booking, err := repo.GetBooking(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, bookingID, booking.ID)
	assert.Equal(t, []string{"plumbing"}, booking.Services)
	assert.Nil(t, booking.TimeSlot)
	assert.Nil(t, booking.Payment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_GetBooking_NotFound(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(bookingID).
		WillReturnError(sql.ErrNoRows)

	booking, err := repo.GetBooking(context.Background(), bookingID)

	assert.Nil(t, booking)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_TransitionStatus_Accept(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	customerID := uuid.New()
	providerID := uuid.New()
	slot := &models.TimeSlot{Date: "2026-09-05", Time: "10:00"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(pendingBookingRow(bookingID, customerID, providerID))
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, "accepted", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET availability").
		WithArgs(providerID, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.TransitionStatus(context.Background(), bookingID,
		models.BookingStatusPending, models.BookingStatusAccepted, slot, false)

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, booking.Status)
	require.NotNil(t, booking.TimeSlot)
	assert.Equal(t, "2026-09-05", booking.TimeSlot.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_TransitionStatus_RacedConflict(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow(bookingID, uuid.New(), uuid.New(), `["plumbing"]`, "rejected",
			nil, nil, nil, false,
			nil, nil, nil, nil, nil,
			time.Now(), time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	booking, err := repo.TransitionStatus(context.Background(), bookingID,
		models.BookingStatusPending, models.BookingStatusAccepted,
		&models.TimeSlot{Date: "2026-09-05", Time: "10:00"}, false)

	assert.Nil(t, booking)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "invalid_transition", apperr.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_DeletePending(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	customerID := uuid.New()

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(bookingID, customerID, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeletePending(context.Background(), bookingID, customerID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// a raced transition leaves nothing to delete
	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(bookingID, customerID, "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.DeletePending(context.Background(), bookingID, customerID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_ApplyRating(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	customerID := uuid.New()
	providerID := uuid.New()

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow(bookingID, customerID, providerID, `["plumbing"]`, "completed",
			"2026-09-05", "10:00", nil, true,
			"paypal", "TXN-1", 1.81, "USD", time.Now(),
			time.Now(), time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(bookingID, customerID).
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE bookings SET rating").
		WithArgs(bookingID, 4, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT rating, review_count FROM users WHERE id (.+) FOR UPDATE").
		WithArgs(providerID).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "review_count"}).AddRow(4.5, 2))
	// (4.5*2 + 4) / 3 = 4.333..., rounded to 4.3
	mock.ExpectExec("UPDATE users SET rating").
		WithArgs(providerID, 4.3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.ApplyRating(context.Background(), bookingID, customerID, 4)

	require.NoError(t, err)
	require.NotNil(t, booking.Rating)
	assert.Equal(t, 4, *booking.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_ApplyRating_Gating(t *testing.T) {
	testCases := []struct {
		name   string
		status string
		paid   bool
		rating interface{}
		code   string
	}{
		{name: "not completed", status: "accepted", paid: false, rating: nil, code: "not_completed"},
		{name: "not paid", status: "completed", paid: false, rating: nil, code: "not_paid"},
		{name: "already rated", status: "completed", paid: true, rating: 5, code: "already_rated"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			bookingID := uuid.New()
			customerID := uuid.New()

			rows := sqlmock.NewRows(bookingTestColumns).
				AddRow(bookingID, customerID, uuid.New(), `["plumbing"]`, tc.status,
					nil, nil, tc.rating, tc.paid,
					nil, nil, nil, nil, nil,
					time.Now(), time.Now())

			mock.ExpectBegin()
			mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
				WithArgs(bookingID, customerID).
				WillReturnRows(rows)
			mock.ExpectRollback()

			booking, err := repo.ApplyRating(context.Background(), bookingID, customerID, 4)

			assert.Nil(t, booking)
			assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
			assert.Equal(t, tc.code, apperr.CodeOf(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepo_MarkPaid(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	payment := &models.Payment{
		Method:        "paypal",
		TransactionID: "TXN-9",
		Amount:        1.81,
		Currency:      "USD",
	}

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow(bookingID, uuid.New(), uuid.New(), `["plumbing"]`, "completed",
			nil, nil, nil, false,
			nil, nil, nil, nil, nil,
			time.Now(), time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(rows)
	mock.ExpectExec("UPDATE bookings").
		WithArgs(bookingID, "paypal", "TXN-9", 1.81, "USD", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := repo.MarkPaid(context.Background(), bookingID, payment)

	require.NoError(t, err)
	assert.True(t, booking.Paid)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, "TXN-9", booking.Payment.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_MarkPaid_AlreadyPaid(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	bookingID := uuid.New()
	paidAt := time.Now()

	rows := sqlmock.NewRows(bookingTestColumns).
		AddRow(bookingID, uuid.New(), uuid.New(), `["plumbing"]`, "completed",
			nil, nil, nil, true,
			"paypal", "TXN-1", 1.81, "USD", paidAt,
			time.Now(), time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id (.+) FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	booking, err := repo.MarkPaid(context.Background(), bookingID, &models.Payment{
		Method:        "paypal",
		TransactionID: "TXN-9",
	})

	// the stored payment wins; the new capture is discarded
	require.NoError(t, err)
	assert.True(t, booking.Paid)
	require.NotNil(t, booking.Payment)
	assert.Equal(t, "TXN-1", booking.Payment.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_StatusCounts(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("SELECT status, COUNT(.+) FROM bookings").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 2).
			AddRow("completed", 5))

	counts, err := repo.StatusCounts(context.Background(), userID, models.RoleCustomer)

	require.NoError(t, err)
	assert.Equal(t, 2, counts["pending"])
	assert.Equal(t, 5, counts["completed"])
	assert.Equal(t, 0, counts["accepted"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementalAverage(t *testing.T) {
	// first rating sets the average outright
	assert.Equal(t, 5.0, incrementalAverage(0, 0, 5))
	// (4.5*2 + 4) / 3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, incrementalAverage(4.5, 2, 4))
	// (4.0*3 + 5) / 4 = 4.25 -> 4.3 (half away from zero)
	assert.Equal(t, 4.3, incrementalAverage(4.0, 3, 5))
}
