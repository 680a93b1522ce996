package bookings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"coworking/internal/domain"
	"coworking/internal/modules/availability"
)

type Service struct {
	bookings BookingRepository
	checker  AvailabilityChecker
	logger   *zap.Logger
}

func NewService(bookings BookingRepository, checker AvailabilityChecker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{bookings: bookings, checker: checker, logger: logger}
}

// CreateBooking persists a confirmed booking after the availability engine
// clears the interval. A rejected check returns ErrNotAvailable together
// with the full result so the caller can render every conflict.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, *availability.AvailabilityResult, error) {
	interval, err := availability.NewTimeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, nil, ErrValidation
	}
	if req.SpaceID == "" {
		return nil, nil, ErrValidation
	}

	result := s.checker.CheckAvailability(ctx, req.SpaceID, interval, availability.CheckOptions{})
	if len(result.Errors) > 0 {
		return nil, &result, ErrValidation
	}
	if !result.OK {
		return nil, &result, ErrNotAvailable
	}

	b := &domain.Booking{
		SpaceID:   req.SpaceID,
		ContactID: req.ContactID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.BookingConfirmed,
		Notes:     req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Concurrent create can slip past the check; the exclusion index is
		// the last line of defense.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_overbooking" {
			return nil, &result, ErrOverbooking
		}
		return nil, nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("space_id", b.SpaceID),
		zap.Time("start_time", b.StartTime),
		zap.Time("end_time", b.EndTime),
	)

	return b, &result, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking flips the booking to cancelled with a mandatory reason,
// freeing its interval for future availability checks.
func (s *Service) CancelBooking(ctx context.Context, id, reason string) (*domain.Booking, error) {
	if reason == "" {
		return nil, ErrValidation
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.CancelWithReason(ctx, id, reason); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", id),
		zap.String("reason", reason),
	)

	return s.GetBooking(ctx, id)
}
