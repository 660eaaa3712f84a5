package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/models"
)

func ownColumn(role string) string {
	if role == models.RoleProvider {
		return "provider_id"
	}
	return "customer_id"
}

// StatusCounts returns booking counts grouped by status for one actor
func (r *BookingRepo) StatusCounts(ctx context.Context, userID uuid.UUID, role string) (map[string]int, error) {
	query := fmt.Sprintf(`
		SELECT status, COUNT(*) AS count
		FROM bookings
		WHERE %s = $1
		GROUP BY status
	`, ownColumn(role))

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return counts, nil
}

// startOfDay returns midnight of t in t's own location. Truncate would snap
// to UTC midnight and disagree with the local date keys used downstream.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailySeries returns per-day booking counts for the trailing window. Days
// without bookings are absent; the usecase zero-fills.
func (r *BookingRepo) DailySeries(ctx context.Context, userID uuid.UUID, role string, days int) ([]models.DailyCount, error) {
	since := startOfDay(time.Now()).AddDate(0, 0, -(days - 1))

	query := fmt.Sprintf(`
		SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM bookings
		WHERE %s = $1 AND created_at >= $2
		GROUP BY created_at::date
		ORDER BY created_at::date ASC
	`, ownColumn(role))

	series := []models.DailyCount{}
	if err := r.db.SelectContext(ctx, &series, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to get daily series: %w", err)
	}

	return series, nil
}
