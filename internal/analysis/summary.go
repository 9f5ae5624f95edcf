// Package analysis derives presentation-ready summary statistics from
// scenario results.
package analysis

import (
	"github.com/montanaflynn/stats"

	"measlesmon/domain/epi"
)

// activeDayThreshold is the expected-cases floor for counting a day as
// part of the visible outbreak.
const activeDayThreshold = 0.5

// IncidenceSummary condenses the daily incidence series into the
// figures the summary cards show.
type IncidenceSummary struct {
	PeakDay     int     `json:"peak_day"`
	PeakCases   float64 `json:"peak_cases"`
	MeanDaily   float64 `json:"mean_daily"`
	MedianDaily float64 `json:"median_daily"`
	P90Daily    float64 `json:"p90_daily"`
	Cumulative  float64 `json:"cumulative"`
	ActiveDays  int     `json:"active_days"`
}

// SummarizeIncidence computes summary statistics over the daily
// incidence series. An empty series yields the zero summary.
func SummarizeIncidence(series []float64) IncidenceSummary {
	if len(series) == 0 {
		return IncidenceSummary{PeakDay: -1}
	}

	mean, _ := stats.Mean(series)
	median, _ := stats.Median(series)
	p90, _ := stats.Percentile(series, 90)
	sum, _ := stats.Sum(series)
	max, _ := stats.Max(series)

	active := 0
	for _, v := range series {
		if v >= activeDayThreshold {
			active++
		}
	}

	return IncidenceSummary{
		PeakDay:     epi.PeakDay(series),
		PeakCases:   max,
		MeanDaily:   mean,
		MedianDaily: median,
		P90Daily:    p90,
		Cumulative:  sum,
		ActiveDays:  active,
	}
}
