package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coworking/internal/domain"
	"coworking/internal/modules/availability"
	"coworking/internal/repository"
)

var ErrInvalidRules = errors.New("invalid location rules")

// RuleUpdater is the availability engine's rule-replacement surface; updating
// rules through it clears the engine's result cache.
type RuleUpdater interface {
	UpdateRuleSet(rules availability.RuleSet) error
}

type Service struct {
	spaceRepo *repository.SpaceRepository
	rulesRepo *repository.LocationRulesRepository
	updater   RuleUpdater
	location  *time.Location
	logger    *zap.Logger
}

func NewService(
	spaceRepo *repository.SpaceRepository,
	rulesRepo *repository.LocationRulesRepository,
	updater RuleUpdater,
	location *time.Location,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		spaceRepo: spaceRepo,
		rulesRepo: rulesRepo,
		updater:   updater,
		location:  location,
		logger:    logger,
	}
}

func (s *Service) ListSpaces(ctx context.Context, locationID string) ([]domain.Space, error) {
	return s.spaceRepo.ListByLocation(ctx, locationID)
}

func (s *Service) GetSpace(ctx context.Context, id string) (*domain.Space, error) {
	return s.spaceRepo.GetByID(ctx, id)
}

func (s *Service) GetLocationRules(ctx context.Context, locationID string) (*domain.LocationRules, error) {
	return s.rulesRepo.GetByLocation(ctx, locationID)
}

// UpdateLocationRules persists the rules row and swaps the live rule set in
// the availability engine, so stale cached results cannot outlive a policy
// change.
func (s *Service) UpdateLocationRules(ctx context.Context, locationID string, req UpdateRulesRequest) (*domain.LocationRules, error) {
	row := domain.LocationRules{
		LocationID:            locationID,
		OpenTime:              req.OpenTime,
		CloseTime:             req.CloseTime,
		BufferMinutes:         req.BufferMinutes,
		MinAdvanceHours:       req.MinAdvanceHours,
		MaxAdvanceDays:        req.MaxAdvanceDays,
		MinDurationMinutes:    req.MinDurationMinutes,
		MaxDurationMinutes:    req.MaxDurationMinutes,
		SameDayCutoff:         req.SameDayCutoff,
		WeekendBookingAllowed: req.WeekendBookingAllowed,
		PeakStart:             req.PeakStart,
		PeakEnd:               req.PeakEnd,
		PeakMultiplier:        req.PeakMultiplier,
	}

	// Build the RuleSet first: an unparseable row must never be persisted.
	rules, err := availability.NewRuleSet(row, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	if err := s.rulesRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}
	if err := s.updater.UpdateRuleSet(rules); err != nil {
		return nil, err
	}

	s.logger.Info("location rules updated", zap.String("location_id", locationID))
	return &row, nil
}
