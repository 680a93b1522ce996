package availability

import (
	"fmt"
	"time"
)

// TimeInterval is a half-open interval [Start, End). All instants are UTC;
// day-boundary math happens in the RuleSet's location.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if start.IsZero() || end.IsZero() {
		return TimeInterval{}, fmt.Errorf("interval bounds must be set")
	}
	if !end.After(start) {
		return TimeInterval{}, fmt.Errorf("interval end %s is not after start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return TimeInterval{Start: start, End: end}, nil
}

func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func (i TimeInterval) Overlaps(o TimeInterval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

type ConflictKind string

const (
	ConflictOverlap ConflictKind = "overlap"
	ConflictBuffer  ConflictKind = "buffer"
	ConflictRule    ConflictKind = "rule"
)

// ConflictEntry is one reason a candidate interval cannot be booked. A check
// collects every conflict at once so the caller can render all of them.
type ConflictEntry struct {
	Kind                 ConflictKind `json:"kind"`
	ConflictingBookingID string       `json:"conflicting_booking_id,omitempty"`
	Message              string       `json:"message"`
}

// ValidationError reports a malformed request, inline in the result rather
// than as a returned error.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const CodeValidation = "VALIDATION_ERROR"

// CodeCheckFailed marks a result whose booking fetch failed; the space is
// reported unavailable (fail closed) and the caller should retry.
const CodeCheckFailed = "AVAILABILITY_CHECK_FAILED"

type AvailabilityResult struct {
	OK          bool              `json:"ok"`
	Conflicts   []ConflictEntry   `json:"conflicts"`
	Suggestions []TimeInterval    `json:"suggestions"`
	Errors      []ValidationError `json:"errors"`
	PeakRate    float64           `json:"peak_rate,omitempty"`
}

type Slot struct {
	Interval  TimeInterval `json:"interval"`
	Available bool         `json:"available"`
	Reason    string       `json:"reason,omitempty"`
}
