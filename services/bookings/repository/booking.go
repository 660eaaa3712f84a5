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

// CreateBooking inserts a new pending booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	services, err := encodeServices(booking.Services)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (id, customer_id, provider_id, services, status, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		booking.ID, booking.CustomerID, booking.ProviderID, services,
		booking.Status, booking.Paid, booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by id
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var row bookingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("booking_not_found", "booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return row.toModel()
}

// ListWithCounterpart lists bookings for one side of the marketplace with the
// other party's public fields joined in. Status filters when non-empty.
func (r *BookingRepo) ListWithCounterpart(ctx context.Context, userID uuid.UUID, role, status string) ([]models.BookingListItem, error) {
	ownColumn, otherColumn := "customer_id", "provider_id"
	if role == models.RoleProvider {
		ownColumn, otherColumn = "provider_id", "customer_id"
	}

	query := fmt.Sprintf(`
		SELECT b.id, b.services, b.status, b.time_slot_date, b.time_slot_time, b.rating, b.paid,
			u.id AS user_id, u.name AS user_name, u.email AS user_email, u.avatar AS user_avatar
		FROM bookings b
		JOIN users u ON u.id = b.%s
		WHERE b.%s = $1 AND ($2 = '' OR b.status = $2)
		ORDER BY b.created_at DESC
	`, otherColumn, ownColumn)

	rows, err := r.db.QueryxContext(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	items := []models.BookingListItem{}
	for rows.Next() {
		var row struct {
			bookingRow
			UserID     uuid.UUID      `db:"user_id"`
			UserName   string         `db:"user_name"`
			UserEmail  string         `db:"user_email"`
			UserAvatar sql.NullString `db:"user_avatar"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}

		booking, err := row.bookingRow.toModel()
		if err != nil {
			return nil, err
		}

		items = append(items, models.BookingListItem{
			BookingID: row.bookingRow.ID,
			Status:    booking.Status,
			Services:  booking.Services,
			TimeSlot:  booking.TimeSlot,
			Rating:    booking.Rating,
			Paid:      booking.Paid,
			User: models.Counterpart{
				ID:     row.UserID,
				Name:   row.UserName,
				Email:  row.UserEmail,
				Avatar: row.UserAvatar.String,
			},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return items, nil
}

// TransitionStatus moves the booking between statuses and flips the provider's
// availability in the same transaction. The row is locked and re-checked so a
// concurrent transition surfaces as a Conflict instead of a lost update.
func (r *BookingRepo) TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to string, slot *models.TimeSlot, providerAvailable bool) (*models.Booking, error) {
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

	if row.Status != from {
		return nil, apperr.Conflict("invalid_transition",
			fmt.Sprintf("booking is %s, expected %s", row.Status, from))
	}

	now := time.Now()
	var slotDate, slotTime sql.NullString
	if slot != nil {
		slotDate = sql.NullString{String: slot.Date, Valid: slot.Date != ""}
		slotTime = sql.NullString{String: slot.Time, Valid: slot.Time != ""}
	} else {
		slotDate = row.TimeSlotDate
		slotTime = row.TimeSlotTime
	}

	updateQuery := `
		UPDATE bookings
		SET status = $2, time_slot_date = $3, time_slot_time = $4, updated_at = $5
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, updateQuery, bookingID, to, slotDate, slotTime, now); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	availabilityQuery := `UPDATE users SET availability = $2, updated_at = $3 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, availabilityQuery, row.ProviderID, providerAvailable, now); err != nil {
		return nil, fmt.Errorf("failed to update provider availability: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	row.Status = to
	row.TimeSlotDate = slotDate
	row.TimeSlotTime = slotTime
	row.UpdatedAt = now
	return row.toModel()
}

// DeletePending hard-deletes the booking when it is still pending and owned by
// the customer; returns whether a row was removed.
func (r *BookingRepo) DeletePending(ctx context.Context, bookingID, customerID uuid.UUID) (bool, error) {
	query := `DELETE FROM bookings WHERE id = $1 AND customer_id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query, bookingID, customerID, models.BookingStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return rows > 0, nil
}

// ApplyRating stores a one-time rating and folds it into the provider's
// running average inside one transaction. Both rows are locked first.
func (r *BookingRepo) ApplyRating(ctx context.Context, bookingID, customerID uuid.UUID, rating int) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var row bookingRow
	lockQuery := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND customer_id = $2 FOR UPDATE`
	if err := tx.GetContext(ctx, &row, lockQuery, bookingID, customerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("booking_not_found", "booking not found")
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if row.Status != models.BookingStatusCompleted {
		return nil, apperr.Conflict("not_completed", "only completed bookings can be rated")
	}
	if !row.Paid {
		return nil, apperr.Conflict("not_paid", "booking must be paid before rating")
	}
	if row.Rating.Valid {
		return nil, apperr.Conflict("already_rated", "booking has already been rated")
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET rating = $2, updated_at = $3 WHERE id = $1`,
		bookingID, rating, now); err != nil {
		return nil, fmt.Errorf("failed to store rating: %w", err)
	}

	var provider struct {
		Rating      float64 `db:"rating"`
		ReviewCount int     `db:"review_count"`
	}
	if err := tx.GetContext(ctx, &provider,
		`SELECT rating, review_count FROM users WHERE id = $1 FOR UPDATE`, row.ProviderID); err != nil {
		return nil, fmt.Errorf("failed to lock provider: %w", err)
	}

	newAverage := incrementalAverage(provider.Rating, provider.ReviewCount, rating)
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET rating = $2, review_count = review_count + 1, updated_at = $3 WHERE id = $1`,
		row.ProviderID, newAverage, now); err != nil {
		return nil, fmt.Errorf("failed to update provider rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	row.Rating = sql.NullInt64{Int64: int64(rating), Valid: true}
	row.UpdatedAt = now
	return row.toModel()
}
