package availability

import (
	"fmt"
	"time"

	"coworking/internal/domain"
)

// ClockTime is a time of day without a date, parsed from "HH:MM".
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// At anchors the clock time on t's calendar date in loc.
func (c ClockTime) At(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}

type PeakWindow struct {
	Start      ClockTime
	End        ClockTime
	Multiplier float64
}

// RuleSet is the immutable booking policy for a location. Replace it
// wholesale via Service.UpdateRuleSet; never mutate fields in place.
type RuleSet struct {
	OpenTime              ClockTime
	CloseTime             ClockTime
	BufferMinutes         int
	MinAdvanceHours       int
	MaxAdvanceDays        int
	MinDurationMinutes    int
	MaxDurationMinutes    int
	SameDayCutoff         ClockTime
	WeekendBookingAllowed bool
	PeakWindow            *PeakWindow
	Location              *time.Location
}

// NewRuleSet builds a RuleSet from its persisted row form.
func NewRuleSet(row domain.LocationRules, loc *time.Location) (RuleSet, error) {
	rs := RuleSet{
		BufferMinutes:         row.BufferMinutes,
		MinAdvanceHours:       row.MinAdvanceHours,
		MaxAdvanceDays:        row.MaxAdvanceDays,
		MinDurationMinutes:    row.MinDurationMinutes,
		MaxDurationMinutes:    row.MaxDurationMinutes,
		WeekendBookingAllowed: row.WeekendBookingAllowed,
		Location:              loc,
	}

	var err error
	if rs.OpenTime, err = ParseClockTime(row.OpenTime); err != nil {
		return RuleSet{}, err
	}
	if rs.CloseTime, err = ParseClockTime(row.CloseTime); err != nil {
		return RuleSet{}, err
	}
	if rs.SameDayCutoff, err = ParseClockTime(row.SameDayCutoff); err != nil {
		return RuleSet{}, err
	}
	if row.PeakStart != "" && row.PeakEnd != "" {
		pw := PeakWindow{Multiplier: row.PeakMultiplier}
		if pw.Start, err = ParseClockTime(row.PeakStart); err != nil {
			return RuleSet{}, err
		}
		if pw.End, err = ParseClockTime(row.PeakEnd); err != nil {
			return RuleSet{}, err
		}
		rs.PeakWindow = &pw
	}

	if err := rs.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

func (r RuleSet) Validate() error {
	if r.Location == nil {
		return fmt.Errorf("rule set requires an explicit time zone")
	}
	if r.CloseTime.Minutes() <= r.OpenTime.Minutes() {
		return fmt.Errorf("close time %s must be after open time %s", r.CloseTime, r.OpenTime)
	}
	if r.BufferMinutes < 0 {
		return fmt.Errorf("buffer minutes must not be negative")
	}
	if r.MinDurationMinutes <= 0 || r.MaxDurationMinutes < r.MinDurationMinutes {
		return fmt.Errorf("invalid duration limits %dm-%dm", r.MinDurationMinutes, r.MaxDurationMinutes)
	}
	if r.MinAdvanceHours < 0 || r.MaxAdvanceDays <= 0 {
		return fmt.Errorf("invalid advance booking window %dh-%dd", r.MinAdvanceHours, r.MaxAdvanceDays)
	}
	if r.PeakWindow != nil && r.PeakWindow.Multiplier <= 0 {
		return fmt.Errorf("peak multiplier must be positive")
	}
	return nil
}

// DayOpen returns the opening instant on t's calendar date.
func (r RuleSet) DayOpen(t time.Time) time.Time {
	return r.OpenTime.At(t, r.Location)
}

// DayClose returns the closing instant on t's calendar date.
func (r RuleSet) DayClose(t time.Time) time.Time {
	return r.CloseTime.At(t, r.Location)
}

// DayStart returns midnight on t's calendar date.
func (r RuleSet) DayStart(t time.Time) time.Time {
	y, m, d := t.In(r.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.Location)
}

// DayEnd returns midnight following t's calendar date.
func (r RuleSet) DayEnd(t time.Time) time.Time {
	return r.DayStart(t).AddDate(0, 0, 1)
}

// InPeakWindow reports whether the interval intersects the configured peak
// window on the interval's own day.
func (r RuleSet) InPeakWindow(interval TimeInterval) bool {
	if r.PeakWindow == nil {
		return false
	}
	peak := TimeInterval{
		Start: r.PeakWindow.Start.At(interval.Start, r.Location),
		End:   r.PeakWindow.End.At(interval.Start, r.Location),
	}
	return interval.Overlaps(peak)
}

// ValidateRules checks the candidate interval against every business rule.
// All checks run; nothing short-circuits, so the caller sees each violation
// at once. Operating hours use the calendar date of interval.Start only, so
// a booking may not span midnight.
func ValidateRules(interval TimeInterval, rules RuleSet, now time.Time) []ConflictEntry {
	var out []ConflictEntry
	violation := func(msg string) {
		out = append(out, ConflictEntry{Kind: ConflictRule, Message: msg})
	}

	open := rules.DayOpen(interval.Start)
	closeAt := rules.DayClose(interval.Start)
	if interval.Start.Before(open) || interval.End.After(closeAt) {
		violation(fmt.Sprintf("booking is outside operating hours %s-%s", rules.OpenTime, rules.CloseTime))
	}

	if !rules.WeekendBookingAllowed {
		switch interval.Start.In(rules.Location).Weekday() {
		case time.Saturday, time.Sunday:
			violation("weekend bookings are not allowed")
		}
	}

	lead := interval.Start.Sub(now)
	if lead < time.Duration(rules.MinAdvanceHours)*time.Hour {
		violation(fmt.Sprintf("booking must start at least %dh in advance", rules.MinAdvanceHours))
	}
	if lead > time.Duration(rules.MaxAdvanceDays)*24*time.Hour {
		violation(fmt.Sprintf("booking cannot start more than %d days in advance", rules.MaxAdvanceDays))
	}

	if rules.DayStart(interval.Start).Equal(rules.DayStart(now)) &&
		now.After(rules.SameDayCutoff.At(now, rules.Location)) {
		violation(fmt.Sprintf("same-day bookings are closed after %s", rules.SameDayCutoff))
	}

	minutes := int(interval.Duration() / time.Minute)
	if minutes < rules.MinDurationMinutes {
		violation(fmt.Sprintf("duration %dm is shorter than the minimum %dm", minutes, rules.MinDurationMinutes))
	}
	if minutes > rules.MaxDurationMinutes {
		violation(fmt.Sprintf("duration %dm is longer than the maximum %dm", minutes, rules.MaxDurationMinutes))
	}

	return out
}
