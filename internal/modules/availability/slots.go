package availability

import (
	"time"

	"coworking/internal/domain"
)

// SlotGranularity is the fixed grid width for day views and suggestions.
const SlotGranularity = 30 * time.Minute

// GenerateDaySlots partitions the operating window of date's calendar day
// into contiguous fixed-width slots, marking each against raw occupancy.
// The loop stops before any slot whose end would pass closing time, so the
// grid covers exactly [open, close). Output is ordered ascending and
// deterministic for identical inputs.
func GenerateDaySlots(rules RuleSet, date time.Time, bookings []domain.Booking) []Slot {
	open := rules.DayOpen(date)
	closeAt := rules.DayClose(date)

	slots := make([]Slot, 0, int(closeAt.Sub(open)/SlotGranularity))
	for start := open; !start.Add(SlotGranularity).After(closeAt); start = start.Add(SlotGranularity) {
		interval := TimeInterval{Start: start, End: start.Add(SlotGranularity)}
		slot := Slot{Interval: interval, Available: true}
		if HasAnyOverlap(interval, bookings) {
			slot.Available = false
			slot.Reason = "booked"
		}
		slots = append(slots, slot)
	}
	return slots
}
