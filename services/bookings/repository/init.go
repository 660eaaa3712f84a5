package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
)

// BookingRepo implements booking data access over Postgres
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// bookingRow mirrors the bookings table with its nullable columns
type bookingRow struct {
	ID                   uuid.UUID       `db:"id"`
	CustomerID           uuid.UUID       `db:"customer_id"`
	ProviderID           uuid.UUID       `db:"provider_id"`
	Services             string          `db:"services"`
	Status               string          `db:"status"`
	TimeSlotDate         sql.NullString  `db:"time_slot_date"`
	TimeSlotTime         sql.NullString  `db:"time_slot_time"`
	Rating               sql.NullInt64   `db:"rating"`
	Paid                 bool            `db:"paid"`
	PaymentMethod        sql.NullString  `db:"payment_method"`
	PaymentTransactionID sql.NullString  `db:"payment_transaction_id"`
	PaymentAmount        sql.NullFloat64 `db:"payment_amount"`
	PaymentCurrency      sql.NullString  `db:"payment_currency"`
	PaidAt               sql.NullTime    `db:"paid_at"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

const bookingColumns = `id, customer_id, provider_id, services, status,
		time_slot_date, time_slot_time, rating, paid,
		payment_method, payment_transaction_id, payment_amount, payment_currency, paid_at,
		created_at, updated_at`

func (row *bookingRow) toModel() (*models.Booking, error) {
	booking := &models.Booking{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		ProviderID: row.ProviderID,
		Status:     row.Status,
		Paid:       row.Paid,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Services != "" {
		if err := json.Unmarshal([]byte(row.Services), &booking.Services); err != nil {
			return nil, fmt.Errorf("failed to decode services: %w", err)
		}
	}

	if row.TimeSlotDate.Valid || row.TimeSlotTime.Valid {
		booking.TimeSlot = &models.TimeSlot{
			Date: row.TimeSlotDate.String,
			Time: row.TimeSlotTime.String,
		}
	}

	if row.Rating.Valid {
		rating := int(row.Rating.Int64)
		booking.Rating = &rating
	}

	if row.Paid && row.PaymentTransactionID.Valid {
		booking.Payment = &models.Payment{
			Method:        row.PaymentMethod.String,
			TransactionID: row.PaymentTransactionID.String,
			Amount:        row.PaymentAmount.Float64,
			Currency:      row.PaymentCurrency.String,
			CapturedAt:    row.PaidAt.Time,
		}
	}

	return booking, nil
}

func encodeServices(services []string) (string, error) {
	data, err := json.Marshal(services)
	if err != nil {
		return "", fmt.Errorf("failed to encode services: %w", err)
	}
	return string(data), nil
}

// incrementalAverage folds one new rating into a running mean, rounded
// half away from zero to one decimal.
func incrementalAverage(current float64, count, rating int) float64 {
	return utils.Round1((current*float64(count) + float64(rating)) / float64(count+1))
}
