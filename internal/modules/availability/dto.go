package availability

import "time"

type CheckRequest struct {
	SpaceID          string    `json:"space_id" binding:"required"`
	StartTime        time.Time `json:"start_time" binding:"required"`
	EndTime          time.Time `json:"end_time" binding:"required"`
	ExcludeBookingID string    `json:"exclude_booking_id"`
}

type BulkRequest struct {
	SpaceIDs []string `json:"space_ids" binding:"required"`
	Date     string   `json:"date" binding:"required"` // YYYY-MM-DD
}

type DayResponse struct {
	SpaceID string `json:"space_id"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

type RealTimeResponse struct {
	SpaceID   string `json:"space_id"`
	Available bool   `json:"available"`
}
