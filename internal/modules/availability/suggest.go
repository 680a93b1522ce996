package availability

import "coworking/internal/domain"

// DefaultMaxSuggestions caps how many alternative slots a rejected check
// offers.
const DefaultMaxSuggestions = 5

// SuggestAlternatives scans the rejected interval's day grid left to right
// for runs of free slots long enough to hold the requested duration. Each
// suggestion is exactly the requested duration anchored at the earliest slot
// of its run; the scan then resumes at the slot where the emitted suggestion
// ends, so a long open run yields several back-to-back suggestions.
//
// Suggestions are scoped to interval conflicts only: they respect operating
// hours and occupancy but are not re-validated against weekend, advance or
// cutoff rules.
func SuggestAlternatives(rules RuleSet, rejected TimeInterval, bookings []domain.Booking, maxSuggestions int) []TimeInterval {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	requested := rejected.Duration()
	slotsPerSuggestion := int(requested / SlotGranularity)
	if requested%SlotGranularity != 0 {
		slotsPerSuggestion++
	}
	if slotsPerSuggestion == 0 {
		slotsPerSuggestion = 1
	}

	grid := GenerateDaySlots(rules, rejected.Start, bookings)

	var out []TimeInterval
	for i := 0; i < len(grid) && len(out) < maxSuggestions; {
		if !grid[i].Available {
			i++
			continue
		}

		// Greedily extend the run from slot i.
		end := i
		for end < len(grid) && grid[end].Available && end-i < slotsPerSuggestion {
			end++
		}
		if end-i < slotsPerSuggestion {
			// Run too short; skip past the slot that broke it.
			i = end + 1
			continue
		}

		start := grid[i].Interval.Start
		out = append(out, TimeInterval{Start: start, End: start.Add(requested)})
		i += slotsPerSuggestion
	}
	return out
}
