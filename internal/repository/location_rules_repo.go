package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"coworking/internal/domain"
)

type LocationRulesRepository struct {
	db *gorm.DB
}

func NewLocationRulesRepository(db *gorm.DB) *LocationRulesRepository {
	return &LocationRulesRepository{db: db}
}

type locationRulesModel struct {
	LocationID            string    `gorm:"column:location_id;primaryKey"`
	OpenTime              string    `gorm:"column:open_time"`
	CloseTime             string    `gorm:"column:close_time"`
	BufferMinutes         int       `gorm:"column:buffer_minutes"`
	MinAdvanceHours       int       `gorm:"column:min_advance_hours"`
	MaxAdvanceDays        int       `gorm:"column:max_advance_days"`
	MinDurationMinutes    int       `gorm:"column:min_duration_minutes"`
	MaxDurationMinutes    int       `gorm:"column:max_duration_minutes"`
	SameDayCutoff         string    `gorm:"column:same_day_cutoff"`
	WeekendBookingAllowed bool      `gorm:"column:weekend_booking_allowed"`
	PeakStart             *string   `gorm:"column:peak_start"`
	PeakEnd               *string   `gorm:"column:peak_end"`
	PeakMultiplier        *float64  `gorm:"column:peak_multiplier"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (locationRulesModel) TableName() string { return "location_rules" }

func toDomainRules(m locationRulesModel) domain.LocationRules {
	out := domain.LocationRules{
		LocationID:            m.LocationID,
		OpenTime:              m.OpenTime,
		CloseTime:             m.CloseTime,
		BufferMinutes:         m.BufferMinutes,
		MinAdvanceHours:       m.MinAdvanceHours,
		MaxAdvanceDays:        m.MaxAdvanceDays,
		MinDurationMinutes:    m.MinDurationMinutes,
		MaxDurationMinutes:    m.MaxDurationMinutes,
		SameDayCutoff:         m.SameDayCutoff,
		WeekendBookingAllowed: m.WeekendBookingAllowed,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.PeakStart != nil {
		out.PeakStart = *m.PeakStart
	}
	if m.PeakEnd != nil {
		out.PeakEnd = *m.PeakEnd
	}
	if m.PeakMultiplier != nil {
		out.PeakMultiplier = *m.PeakMultiplier
	}
	return out
}

func toRulesModel(r domain.LocationRules) locationRulesModel {
	m := locationRulesModel{
		LocationID:            r.LocationID,
		OpenTime:              r.OpenTime,
		CloseTime:             r.CloseTime,
		BufferMinutes:         r.BufferMinutes,
		MinAdvanceHours:       r.MinAdvanceHours,
		MaxAdvanceDays:        r.MaxAdvanceDays,
		MinDurationMinutes:    r.MinDurationMinutes,
		MaxDurationMinutes:    r.MaxDurationMinutes,
		SameDayCutoff:         r.SameDayCutoff,
		WeekendBookingAllowed: r.WeekendBookingAllowed,
		UpdatedAt:             time.Now().UTC(),
	}
	if r.PeakStart != "" {
		m.PeakStart = &r.PeakStart
	}
	if r.PeakEnd != "" {
		m.PeakEnd = &r.PeakEnd
	}
	if r.PeakMultiplier > 0 {
		m.PeakMultiplier = &r.PeakMultiplier
	}
	return m
}

// GetByLocation returns the persisted rules row, or (nil, nil) when the
// location has none and config defaults apply.
func (r *LocationRulesRepository) GetByLocation(ctx context.Context, locationID string) (*domain.LocationRules, error) {
	var m locationRulesModel
	tx := r.db.WithContext(ctx).First(&m, "location_id = ?", locationID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	rules := toDomainRules(m)
	return &rules, nil
}

func (r *LocationRulesRepository) Upsert(ctx context.Context, rules domain.LocationRules) error {
	m := toRulesModel(rules)
	return r.db.WithContext(ctx).Save(&m).Error
}
