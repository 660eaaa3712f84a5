package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
)

const statsSeriesDays = 7

// ListBookings returns the role-scoped booking listing with counterpart info,
// per-room unread counts and the delete affordance.
func (uc *BookingUC) ListBookings(ctx context.Context, userID uuid.UUID, role, status string) ([]models.BookingListItem, error) {
	if status != "" {
		switch status {
		case models.BookingStatusPending, models.BookingStatusAccepted,
			models.BookingStatusRejected, models.BookingStatusCompleted:
		default:
			return nil, apperr.Validation("invalid_status", "unknown status filter")
		}
	}

	items, err := uc.bookingRepo.ListWithCounterpart(ctx, userID, role, status)
	if err != nil {
		return nil, err
	}

	for i := range items {
		room := utils.RoomID(userID, items[i].User.ID)
		unread, err := uc.messages.CountUnread(ctx, room, userID)
		if err != nil {
			return nil, err
		}
		items[i].UnreadCount = unread
		items[i].CanDelete = role == models.RoleCustomer && items[i].Status == models.BookingStatusPending
	}

	return items, nil
}

// Stats aggregates the dashboard numbers: status counts, rooms with unread
// messages (rejected bookings excluded) and a zero-filled 7-day series.
func (uc *BookingUC) Stats(ctx context.Context, userID uuid.UUID, role string) (*models.BookingStats, error) {
	counts, err := uc.bookingRepo.StatusCounts(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	stats := &models.BookingStats{
		Total:    total,
		Pending:  counts[models.BookingStatusPending],
		Accepted: counts[models.BookingStatusAccepted],
		Rejected: counts[models.BookingStatusRejected],
	}

	items, err := uc.bookingRepo.ListWithCounterpart(ctx, userID, role, "")
	if err != nil {
		return nil, err
	}
	roomSet := make(map[string]struct{})
	rooms := make([]string, 0, len(items))
	for _, item := range items {
		if item.Status == models.BookingStatusRejected {
			continue
		}
		room := utils.RoomID(userID, item.User.ID)
		if _, seen := roomSet[room]; seen {
			continue
		}
		roomSet[room] = struct{}{}
		rooms = append(rooms, room)
	}
	if len(rooms) > 0 {
		unreadRooms, err := uc.messages.UnreadRooms(ctx, userID, rooms)
		if err != nil {
			return nil, err
		}
		stats.UnreadRooms = unreadRooms
	}

	series, err := uc.bookingRepo.DailySeries(ctx, userID, role, statsSeriesDays)
	if err != nil {
		return nil, err
	}
	stats.Series = zeroFillSeries(series, statsSeriesDays)

	return stats, nil
}

// zeroFillSeries expands sparse daily counts into a dense trailing window
func zeroFillSeries(series []models.DailyCount, days int) []models.DailyCount {
	byDate := make(map[string]int, len(series))
	for _, point := range series {
		byDate[point.Date] = point.Count
	}

	filled := make([]models.DailyCount, 0, days)
	today := time.Now()
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		filled = append(filled, models.DailyCount{
			Date:  date,
			Count: byDate[date],
		})
	}
	return filled
}
