package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultCacheTTL bounds how stale a real-time answer may be.
	DefaultCacheTTL = 2 * time.Minute
	// DefaultCacheSize bounds the real-time result cache.
	DefaultCacheSize = 100
)

type CheckOptions struct {
	// SkipRules runs only structural validation and conflict detection.
	SkipRules bool
	// ExcludeBookingID drops one booking from conflict detection, for
	// edit-existing-booking flows.
	ExcludeBookingID string
}

// SpaceDayAvailability is one space's entry in a bulk day grid. A failed
// fetch leaves Slots empty and sets Error instead of aborting the batch.
type SpaceDayAvailability struct {
	SpaceID string `json:"space_id"`
	Slots   []Slot `json:"slots"`
	Error   string `json:"error,omitempty"`
}

// Service answers availability questions for the spaces of one location.
// It owns the active RuleSet and a short-TTL cache for the real-time path;
// both are guarded for concurrent use. Instances for different locations
// coexist, each with its own rules.
type Service struct {
	source BookingQuerySource
	logger *zap.Logger
	now    func() time.Time

	mu    sync.RWMutex
	rules RuleSet
	cache *resultCache
}

func NewService(source BookingQuerySource, rules RuleSet, logger *zap.Logger) (*Service, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
		rules:  rules,
		cache:  newResultCache(DefaultCacheSize, DefaultCacheTTL),
	}, nil
}

// Rules returns a snapshot of the active rule set.
func (s *Service) Rules() RuleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

// UpdateRuleSet swaps the active rule set and clears the cache in the same
// critical section; a rule change can flip the legality of cached results.
func (s *Service) UpdateRuleSet(rules RuleSet) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	s.mu.Lock()
	s.rules = rules
	s.cache.clear()
	s.mu.Unlock()

	s.logger.Info("availability rules replaced",
		zap.String("open", rules.OpenTime.String()),
		zap.String("close", rules.CloseTime.String()),
		zap.Int("buffer_minutes", rules.BufferMinutes),
	)
	return nil
}

// CheckAvailability decides whether the interval can be booked in the space.
// Caller mistakes and rule/conflict rejections come back inside the result;
// a failed booking fetch fails closed with CodeCheckFailed.
func (s *Service) CheckAvailability(ctx context.Context, spaceID string, interval TimeInterval, opts CheckOptions) AvailabilityResult {
	result := AvailabilityResult{
		Conflicts:   []ConflictEntry{},
		Suggestions: []TimeInterval{},
		Errors:      []ValidationError{},
	}

	if spaceID == "" {
		result.Errors = append(result.Errors, ValidationError{
			Code: CodeValidation, Field: "space_id", Message: "space id is required",
		})
	}
	if _, err := NewTimeInterval(interval.Start, interval.End); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Code: CodeValidation, Field: "interval", Message: err.Error(),
		})
	}
	if len(result.Errors) > 0 {
		return result
	}

	rules := s.Rules()

	bookings, err := s.source.ListConfirmedBookings(ctx, spaceID,
		rules.DayStart(interval.Start), rules.DayEnd(interval.End), opts.ExcludeBookingID)
	if err != nil {
		s.logger.Warn("booking fetch failed, reporting unavailable",
			zap.String("space_id", spaceID), zap.Error(err))
		result.Errors = append(result.Errors, ValidationError{
			Code:    CodeCheckFailed,
			Message: "could not verify existing bookings, retry shortly",
		})
		return result
	}

	if !opts.SkipRules {
		result.Conflicts = append(result.Conflicts, ValidateRules(interval, rules, s.now())...)
	}
	result.Conflicts = append(result.Conflicts, DetectConflicts(interval, bookings, rules.BufferMinutes)...)

	result.OK = len(result.Conflicts) == 0
	if !result.OK {
		result.Suggestions = SuggestAlternatives(rules, interval, bookings, DefaultMaxSuggestions)
	}
	if rules.InPeakWindow(interval) {
		result.PeakRate = rules.PeakWindow.Multiplier
	}
	return result
}

// GetDayAvailability returns the 30-minute occupancy grid for the space on
// date's calendar day.
func (s *Service) GetDayAvailability(ctx context.Context, spaceID string, date time.Time) ([]Slot, error) {
	if spaceID == "" {
		return nil, fmt.Errorf("%w: space id is required", ErrValidation)
	}

	rules := s.Rules()
	bookings, err := s.source.ListConfirmedBookings(ctx, spaceID,
		rules.DayStart(date), rules.DayEnd(date), "")
	if err != nil {
		return nil, fmt.Errorf("list bookings for space %s: %w", spaceID, err)
	}
	return GenerateDaySlots(rules, date, bookings), nil
}

// GetBulkAvailability fans out one day-grid fetch per space concurrently.
// Failures stay isolated: a failing space gets an empty grid and an error
// marker while the rest of the batch completes normally.
func (s *Service) GetBulkAvailability(ctx context.Context, spaceIDs []string, date time.Time) map[string]SpaceDayAvailability {
	seen := make(map[string]struct{}, len(spaceIDs))
	unique := make([]string, 0, len(spaceIDs))
	for _, spaceID := range spaceIDs {
		if _, dup := seen[spaceID]; dup {
			continue
		}
		seen[spaceID] = struct{}{}
		unique = append(unique, spaceID)
	}

	out := make(map[string]SpaceDayAvailability, len(unique))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, spaceID := range unique {
		wg.Add(1)
		go func(spaceID string) {
			defer wg.Done()

			entry := SpaceDayAvailability{SpaceID: spaceID, Slots: []Slot{}}
			slots, err := s.GetDayAvailability(ctx, spaceID, date)
			if err != nil {
				s.logger.Warn("bulk availability fetch failed",
					zap.String("space_id", spaceID), zap.Error(err))
				entry.Error = CodeCheckFailed
			} else {
				entry.Slots = slots
			}

			mu.Lock()
			out[spaceID] = entry
			mu.Unlock()
		}(spaceID)
	}
	wg.Wait()

	return out
}

// CheckRealTimeAvailability is the hot polling path: cached for the TTL and
// checked without business rules, which a quick "is this still free" poll
// does not need. Unknown states (fetch failures) report false and are not
// cached, so the next poll retries.
func (s *Service) CheckRealTimeAvailability(ctx context.Context, spaceID string, interval TimeInterval) bool {
	key := cacheKey(spaceID, interval)
	now := s.now()

	if cached, ok := s.cache.get(key, now); ok {
		return resultAvailable(cached)
	}

	result := s.CheckAvailability(ctx, spaceID, interval, CheckOptions{SkipRules: true})
	if !failedClosed(result) {
		s.cache.put(key, result, now)
	}
	return resultAvailable(result)
}

func resultAvailable(r AvailabilityResult) bool {
	return len(r.Conflicts) == 0 && len(r.Errors) == 0
}

func failedClosed(r AvailabilityResult) bool {
	for _, e := range r.Errors {
		if e.Code == CodeCheckFailed {
			return true
		}
	}
	return false
}
