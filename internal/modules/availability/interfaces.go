package availability

import (
	"context"
	"time"

	"coworking/internal/domain"
)

// BookingQuerySource fetches the confirmed bookings that can block a
// candidate interval. excludeID, when non-empty, drops one booking from the
// result so an edited booking does not conflict with itself. Implementations
// may fail with transient I/O errors; the service fails closed on them.
type BookingQuerySource interface {
	ListConfirmedBookings(ctx context.Context, spaceID string, windowStart, windowEnd time.Time, excludeID string) ([]domain.Booking, error)
}
