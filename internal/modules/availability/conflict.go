package availability

import (
	"fmt"
	"time"

	"coworking/internal/domain"
)

// DetectConflicts tests the candidate interval against every confirmed
// booking independently, so a candidate can collect conflicts from several
// bookings. Overlap uses half-open semantics; the buffer test only applies
// to bookings the candidate does not overlap.
func DetectConflicts(interval TimeInterval, bookings []domain.Booking, bufferMinutes int) []ConflictEntry {
	var out []ConflictEntry
	buffer := time.Duration(bufferMinutes) * time.Minute

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		existing := TimeInterval{Start: b.StartTime, End: b.EndTime}

		if interval.Overlaps(existing) {
			out = append(out, ConflictEntry{
				Kind:                 ConflictOverlap,
				ConflictingBookingID: b.ID,
				Message:              fmt.Sprintf("overlaps existing booking %s", b.ID),
			})
			continue
		}

		if buffer <= 0 {
			continue
		}
		gap := gapBetween(interval, existing)
		if gap < buffer {
			out = append(out, ConflictEntry{
				Kind:                 ConflictBuffer,
				ConflictingBookingID: b.ID,
				Message: fmt.Sprintf("only %dm gap to booking %s, %dm buffer required",
					int(gap/time.Minute), b.ID, bufferMinutes),
			})
		}
	}

	return out
}

// gapBetween returns the distance between two non-overlapping intervals on
// whichever side they are adjacent. Touching endpoints yield zero.
func gapBetween(a, b TimeInterval) time.Duration {
	if !a.Start.Before(b.End) {
		return a.Start.Sub(b.End)
	}
	return b.Start.Sub(a.End)
}

// HasAnyOverlap reports raw occupancy: true when the interval directly
// overlaps any confirmed booking. Buffers are ignored here; they are a
// booking-time rule, not a grid property.
func HasAnyOverlap(interval TimeInterval, bookings []domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if interval.Overlaps(TimeInterval{Start: b.StartTime, End: b.EndTime}) {
			return true
		}
	}
	return false
}
