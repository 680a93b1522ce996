package bookings

import "time"

type CreateBookingRequest struct {
	SpaceID   string    `json:"space_id" binding:"required"`
	ContactID string    `json:"contact_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
