package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
)

// MarkPaid records a captured payment on the booking. The row is locked so a
// concurrent capture cannot double-write; an already-paid booking is returned
// untouched (capture is idempotent upstream).
func (r *BookingRepo) MarkPaid(ctx context.Context, bookingID uuid.UUID, payment *models.Payment) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row bookingRow
	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &row, lockQuery, bookingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("booking_not_found", "booking not found")
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if row.Paid {
		return row.toModel()
	}

	now := time.Now()
	query := `
		UPDATE bookings
		SET paid = TRUE, payment_method = $2, payment_transaction_id = $3,
			payment_amount = $4, payment_currency = $5, paid_at = $6, updated_at = $6
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query,
		bookingID, payment.Method, payment.TransactionID,
		payment.Amount, payment.Currency, now); err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	row.Paid = true
	row.PaymentMethod = sql.NullString{String: payment.Method, Valid: true}
	row.PaymentTransactionID = sql.NullString{String: payment.TransactionID, Valid: true}
	row.PaymentAmount = sql.NullFloat64{Float64: payment.Amount, Valid: true}
	row.PaymentCurrency = sql.NullString{String: payment.Currency, Valid: true}
	row.PaidAt = sql.NullTime{Time: now, Valid: true}
	row.UpdatedAt = now
	return row.toModel()
}
