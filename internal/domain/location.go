package domain

import "time"

type Location struct {
	ID        string     `json:"id"`
	Name      string     `json:"name" validate:"required"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	TimeZone  string     `json:"time_zone"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	Spaces []Space `json:"spaces,omitempty"`
}

// LocationRules is the persisted booking-policy row for a location. Times of
// day are stored as "HH:MM" strings; the availability module parses them into
// its RuleSet.
type LocationRules struct {
	LocationID            string    `json:"location_id"`
	OpenTime              string    `json:"open_time"`
	CloseTime             string    `json:"close_time"`
	BufferMinutes         int       `json:"buffer_minutes"`
	MinAdvanceHours       int       `json:"min_advance_hours"`
	MaxAdvanceDays        int       `json:"max_advance_days"`
	MinDurationMinutes    int       `json:"min_duration_minutes"`
	MaxDurationMinutes    int       `json:"max_duration_minutes"`
	SameDayCutoff         string    `json:"same_day_cutoff"`
	WeekendBookingAllowed bool      `json:"weekend_booking_allowed"`
	PeakStart             string    `json:"peak_start,omitempty"`
	PeakEnd               string    `json:"peak_end,omitempty"`
	PeakMultiplier        float64   `json:"peak_multiplier,omitempty"`
	UpdatedAt             time.Time `json:"updated_at"`
}
