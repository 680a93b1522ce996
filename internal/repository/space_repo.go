package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coworking/internal/domain"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

type spaceModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	LocationID   string    `gorm:"column:location_id;index"`
	Name         string    `gorm:"column:name"`
	Description  *string   `gorm:"column:description"`
	SpaceType    string    `gorm:"column:space_type"`
	Capacity     int       `gorm:"column:capacity"`
	PricePerHour float64   `gorm:"column:price_per_hour"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (spaceModel) TableName() string { return "spaces" }

func toDomainSpace(m spaceModel) domain.Space {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return domain.Space{
		ID:           m.ID,
		LocationID:   m.LocationID,
		Name:         m.Name,
		Description:  desc,
		SpaceType:    domain.SpaceType(m.SpaceType),
		Capacity:     m.Capacity,
		PricePerHour: m.PricePerHour,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *SpaceRepository) GetByID(ctx context.Context, id string) (*domain.Space, error) {
	var m spaceModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainSpace(m)
	return &s, nil
}

func (r *SpaceRepository) ListByLocation(ctx context.Context, locationID string) ([]domain.Space, error) {
	var rows []spaceModel
	tx := r.db.WithContext(ctx).
		Where("location_id = ? AND is_active = ?", locationID, true).
		Order("name ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Space, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSpace(m))
	}
	return out, nil
}
