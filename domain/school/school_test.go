package school

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsRate(t *testing.T) {
	s := School{Name: "Desert Vista", Enrolled: 100, ImmunizationRate: 1.2}.Normalize()
	assert.Equal(t, 1.0, s.ImmunizationRate)

	s = School{Name: "Desert Vista", Enrolled: 100, ImmunizationRate: -0.1}.Normalize()
	assert.Equal(t, 0.0, s.ImmunizationRate)

	s = School{Name: "Desert Vista", Enrolled: -5, ImmunizationRate: 0.9}.Normalize()
	assert.Equal(t, 0, s.Enrolled)
}

func TestSusceptible(t *testing.T) {
	s := School{Enrolled: 500, ImmunizationRate: 0.85}
	assert.InDelta(t, 75.0, s.Susceptible(), 1e-9)
}

func TestListable(t *testing.T) {
	assert.False(t, School{Enrolled: 19}.Listable())
	assert.True(t, School{Enrolled: 20}.Listable())
}

func TestSortByName(t *testing.T) {
	schools := []School{{Name: "Zuni Hills"}, {Name: "Acacia"}, {Name: "Mesa View"}}
	SortByName(schools)
	assert.Equal(t, "Acacia", schools[0].Name)
	assert.Equal(t, "Mesa View", schools[1].Name)
	assert.Equal(t, "Zuni Hills", schools[2].Name)
}

func TestExclusionCalendarSkipsWeekends(t *testing.T) {
	// 2026-08-28 is a Friday.
	start := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	days := ExclusionCalendar(start, 21)
	require.Len(t, days, CalendarHorizonDays)

	for _, d := range days {
		wd := d.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}

	// Friday, then the weekend is skipped to Monday.
	assert.Equal(t, start, days[0].Date)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), days[1].Date)
}

func TestExclusionCalendarMarksQuarantineWindow(t *testing.T) {
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday
	days := ExclusionCalendar(start, 21)

	for i, d := range days {
		assert.Equal(t, i < 21, d.Excluded, "day %d", i)
	}
}

func TestExclusionCalendarNegativeQuarantine(t *testing.T) {
	days := ExclusionCalendar(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), -3)
	for i, d := range days {
		assert.False(t, d.Excluded, "day %d", i)
	}
}
