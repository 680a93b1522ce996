package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coworking/internal/domain"
)

func confirmedBooking(id string, start, end time.Time) domain.Booking {
	return domain.Booking{
		ID:        id,
		SpaceID:   "space-1",
		StartTime: start,
		EndTime:   end,
		Status:    domain.BookingConfirmed,
	}
}

func TestDetectConflicts_IdenticalInterval(t *testing.T) {
	start := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	existing := []domain.Booking{confirmedBooking("b1", start, end)}

	conflicts := DetectConflicts(TimeInterval{Start: start, End: end}, existing, 15)

	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictOverlap, conflicts[0].Kind)
	assert.Equal(t, "b1", conflicts[0].ConflictingBookingID)
	assert.Equal(t, "overlaps existing booking b1", conflicts[0].Message)
}

func TestDetectConflicts_TouchingEndpointsAreNotOverlap(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{confirmedBooking("b1", day.Add(10*time.Hour), day.Add(11*time.Hour))}
	adjacent := TimeInterval{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)}

	// Without a buffer, back-to-back bookings are fine.
	assert.Empty(t, DetectConflicts(adjacent, existing, 0))

	// With one, a zero gap violates it.
	conflicts := DetectConflicts(adjacent, existing, 15)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictBuffer, conflicts[0].Kind)
	assert.Equal(t, "b1", conflicts[0].ConflictingBookingID)
}

func TestDetectConflicts_BufferGap(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{confirmedBooking("b1", day.Add(10*time.Hour), day.Add(11*time.Hour))}

	tooClose := TimeInterval{Start: day.Add(11*time.Hour + 5*time.Minute), End: day.Add(12 * time.Hour)}
	conflicts := DetectConflicts(tooClose, existing, 15)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictBuffer, conflicts[0].Kind)
	assert.Equal(t, "only 5m gap to booking b1, 15m buffer required", conflicts[0].Message)

	farEnough := TimeInterval{Start: day.Add(11*time.Hour + 15*time.Minute), End: day.Add(12 * time.Hour)}
	assert.Empty(t, DetectConflicts(farEnough, existing, 15))
}

func TestDetectConflicts_BufferBeforeExistingBooking(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{confirmedBooking("b1", day.Add(14*time.Hour), day.Add(15*time.Hour))}

	endsTooClose := TimeInterval{Start: day.Add(13 * time.Hour), End: day.Add(13*time.Hour + 50*time.Minute)}
	conflicts := DetectConflicts(endsTooClose, existing, 15)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictBuffer, conflicts[0].Kind)
	assert.Equal(t, "only 10m gap to booking b1, 15m buffer required", conflicts[0].Message)
}

func TestDetectConflicts_CollectsFromEveryBooking(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{
		confirmedBooking("b1", day.Add(10*time.Hour), day.Add(11*time.Hour)),
		confirmedBooking("b2", day.Add(12*time.Hour), day.Add(13*time.Hour)),
	}

	// Overlaps b1, ends 10 minutes before b2.
	candidate := TimeInterval{Start: day.Add(10*time.Hour + 30*time.Minute), End: day.Add(11*time.Hour + 50*time.Minute)}
	conflicts := DetectConflicts(candidate, existing, 15)

	require.Len(t, conflicts, 2)
	assert.Equal(t, ConflictOverlap, conflicts[0].Kind)
	assert.Equal(t, "b1", conflicts[0].ConflictingBookingID)
	assert.Equal(t, ConflictBuffer, conflicts[1].Kind)
	assert.Equal(t, "b2", conflicts[1].ConflictingBookingID)
}

func TestDetectConflicts_IgnoresUnconfirmed(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	pending := domain.Booking{
		ID:        "p1",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
		Status:    domain.BookingPending,
	}
	cancelled := domain.Booking{
		ID:        "c1",
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
		Status:    domain.BookingCancelled,
	}

	candidate := TimeInterval{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}
	assert.Empty(t, DetectConflicts(candidate, []domain.Booking{pending, cancelled}, 15))
}

func TestHasAnyOverlap(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{confirmedBooking("b1", day.Add(10*time.Hour), day.Add(11*time.Hour))}

	assert.True(t, HasAnyOverlap(TimeInterval{Start: day.Add(10*time.Hour + 30*time.Minute), End: day.Add(12 * time.Hour)}, existing))
	// Touching endpoint is not an overlap, and buffers never apply here.
	assert.False(t, HasAnyOverlap(TimeInterval{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)}, existing))
}
