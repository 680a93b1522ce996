package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coworking/internal/domain"
)

// 2026-03-02 is a Monday; 2026-03-04 a Wednesday; 2026-03-07 a Saturday.
var (
	testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func testRules(t *testing.T) RuleSet {
	t.Helper()
	rules := RuleSet{
		OpenTime:              ClockTime{Hour: 9},
		CloseTime:             ClockTime{Hour: 18},
		BufferMinutes:         15,
		MinAdvanceHours:       1,
		MaxAdvanceDays:        90,
		MinDurationMinutes:    60,
		MaxDurationMinutes:    480,
		SameDayCutoff:         ClockTime{Hour: 17},
		WeekendBookingAllowed: false,
		Location:              time.UTC,
	}
	require.NoError(t, rules.Validate())
	return rules
}

func testRulesRow() domain.LocationRules {
	return domain.LocationRules{
		LocationID:            "main",
		OpenTime:              "09:00",
		CloseTime:             "18:00",
		BufferMinutes:         15,
		MinAdvanceHours:       1,
		MaxAdvanceDays:        90,
		MinDurationMinutes:    60,
		MaxDurationMinutes:    480,
		SameDayCutoff:         "17:00",
		WeekendBookingAllowed: false,
		PeakStart:             "17:00",
		PeakEnd:               "18:00",
		PeakMultiplier:        1.5,
	}
}

func interval(t *testing.T, start, end time.Time) TimeInterval {
	t.Helper()
	iv, err := NewTimeInterval(start, end)
	require.NoError(t, err)
	return iv
}

func messages(entries []ConflictEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestValidateRules_CleanInterval(t *testing.T) {
	rules := testRules(t)
	iv := interval(t,
		time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))

	assert.Empty(t, ValidateRules(iv, rules, testNow))
}

func TestValidateRules_OperatingHours(t *testing.T) {
	rules := testRules(t)

	before := interval(t,
		time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC))
	violations := ValidateRules(before, rules, testNow)
	require.Len(t, violations, 1)
	assert.Equal(t, ConflictRule, violations[0].Kind)
	assert.Equal(t, "booking is outside operating hours 09:00-18:00", violations[0].Message)

	after := interval(t,
		time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC))
	assert.Contains(t, messages(ValidateRules(after, rules, testNow)),
		"booking is outside operating hours 09:00-18:00")
}

func TestValidateRules_Weekend(t *testing.T) {
	rules := testRules(t)
	saturday := interval(t,
		time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 7, 11, 0, 0, 0, time.UTC))

	assert.Contains(t, messages(ValidateRules(saturday, rules, testNow)),
		"weekend bookings are not allowed")

	rules.WeekendBookingAllowed = true
	assert.Empty(t, ValidateRules(saturday, rules, testNow))
}

func TestValidateRules_AdvanceMinimum(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	iv := interval(t,
		time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC))

	assert.Contains(t, messages(ValidateRules(iv, rules, now)),
		"booking must start at least 1h in advance")
}

func TestValidateRules_AdvanceMaximum(t *testing.T) {
	rules := testRules(t)
	iv := interval(t,
		time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 10, 11, 0, 0, 0, time.UTC))

	assert.Contains(t, messages(ValidateRules(iv, rules, testNow)),
		"booking cannot start more than 90 days in advance")
}

func TestValidateRules_SameDayCutoff(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC)
	iv := interval(t,
		time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC))

	got := messages(ValidateRules(iv, rules, now))
	assert.Contains(t, got, "same-day bookings are closed after 17:00")
	// Checks do not short-circuit: the advance violation is reported too.
	assert.Contains(t, got, "booking must start at least 1h in advance")
}

func TestValidateRules_CutoffDoesNotHitOtherDays(t *testing.T) {
	rules := testRules(t)
	now := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC) // past cutoff today
	iv := interval(t,
		time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC))

	assert.Empty(t, ValidateRules(iv, rules, now))
}

func TestValidateRules_DurationBounds(t *testing.T) {
	rules := testRules(t)

	short := interval(t,
		time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC))
	assert.Contains(t, messages(ValidateRules(short, rules, testNow)),
		"duration 30m is shorter than the minimum 60m")

	long := interval(t,
		time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC))
	assert.Contains(t, messages(ValidateRules(long, rules, testNow)),
		"duration 510m is longer than the maximum 480m")
}

func TestNewRuleSet_FromRow(t *testing.T) {
	row := testRulesRow()
	rules, err := NewRuleSet(row, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "09:00", rules.OpenTime.String())
	assert.Equal(t, "18:00", rules.CloseTime.String())
	assert.Equal(t, 15, rules.BufferMinutes)
	require.NotNil(t, rules.PeakWindow)
	assert.Equal(t, 1.5, rules.PeakWindow.Multiplier)
}

func TestNewRuleSet_RejectsBadRows(t *testing.T) {
	row := testRulesRow()
	row.OpenTime = "25:99"
	_, err := NewRuleSet(row, time.UTC)
	assert.Error(t, err)

	row = testRulesRow()
	row.CloseTime = "08:00" // before open
	_, err = NewRuleSet(row, time.UTC)
	assert.Error(t, err)

	row = testRulesRow()
	_, err = NewRuleSet(row, nil)
	assert.Error(t, err)
}

func TestClockTime_At(t *testing.T) {
	c := ClockTime{Hour: 9, Minute: 30}
	anchor := time.Date(2026, 3, 4, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC), c.At(anchor, time.UTC))
}
