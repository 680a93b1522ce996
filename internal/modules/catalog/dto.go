package catalog

type UpdateRulesRequest struct {
	OpenTime              string  `json:"open_time" binding:"required"`
	CloseTime             string  `json:"close_time" binding:"required"`
	BufferMinutes         int     `json:"buffer_minutes"`
	MinAdvanceHours       int     `json:"min_advance_hours"`
	MaxAdvanceDays        int     `json:"max_advance_days" binding:"required"`
	MinDurationMinutes    int     `json:"min_duration_minutes" binding:"required"`
	MaxDurationMinutes    int     `json:"max_duration_minutes" binding:"required"`
	SameDayCutoff         string  `json:"same_day_cutoff" binding:"required"`
	WeekendBookingAllowed bool    `json:"weekend_booking_allowed"`
	PeakStart             string  `json:"peak_start"`
	PeakEnd               string  `json:"peak_end"`
	PeakMultiplier        float64 `json:"peak_multiplier"`
}
