package domain

import "time"

type SpaceType string

const (
	SpaceHotDesk       SpaceType = "hot_desk"
	SpaceDedicated     SpaceType = "dedicated_desk"
	SpaceMeetingRoom   SpaceType = "meeting_room"
	SpacePrivateOffice SpaceType = "private_office"
)

type Space struct {
	ID           string    `json:"id"`
	LocationID   string    `json:"location_id"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	SpaceType    SpaceType `json:"space_type" validate:"required"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	PricePerHour float64   `json:"price_per_hour" validate:"gte=0"`
	Amenities    []string  `json:"amenities,omitempty" gorm:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
