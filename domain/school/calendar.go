package school

import "time"

// CalendarHorizonDays is how many school weekdays the exclusion
// calendar covers.
const CalendarHorizonDays = 30

// CalendarDay is one school weekday on the exclusion calendar.
type CalendarDay struct {
	Date time.Time `json:"date"`
	// Excluded marks days inside the quarantine window: exposed,
	// un/under-vaccinated students stay home on these days.
	Excluded bool `json:"excluded"`
}

// ExclusionCalendar enumerates the next CalendarHorizonDays Mon–Fri
// school days starting at start, marking the first quarantineDays of
// them as exclusion days. The current date is an input, never read
// here, so the function stays pure.
func ExclusionCalendar(start time.Time, quarantineDays int) []CalendarDay {
	if quarantineDays < 0 {
		quarantineDays = 0
	}

	days := make([]CalendarDay, 0, CalendarHorizonDays)
	curr := start
	for len(days) < CalendarHorizonDays {
		if wd := curr.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, CalendarDay{
				Date:     curr,
				Excluded: len(days) < quarantineDays,
			})
		}
		curr = curr.AddDate(0, 0, 1)
	}
	return days
}
