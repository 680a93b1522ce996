package bookings

import (
	"context"

	"coworking/internal/domain"
	"coworking/internal/modules/availability"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id, reason string) error
}

// AvailabilityChecker is the availability engine's check surface.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, spaceID string, interval availability.TimeInterval, opts availability.CheckOptions) availability.AvailabilityResult
}
