package analysis

import (
	"testing"

	"measlesmon/domain/epi"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeIncidence(t *testing.T) {
	series := epi.IncidenceSeries(100, 90, epi.KernelPolynomialExp)
	summary := SummarizeIncidence(series)

	assert.Equal(t, 10, summary.PeakDay)
	assert.InEpsilon(t, 100.0, summary.Cumulative, 1e-6)
	assert.Greater(t, summary.PeakCases, summary.MeanDaily)
	assert.GreaterOrEqual(t, summary.P90Daily, summary.MedianDaily)
	assert.Greater(t, summary.ActiveDays, 0)
	assert.LessOrEqual(t, summary.ActiveDays, 90)
}

func TestSummarizeIncidenceEmpty(t *testing.T) {
	summary := SummarizeIncidence(nil)
	assert.Equal(t, -1, summary.PeakDay)
	assert.Equal(t, 0.0, summary.Cumulative)
}

func TestSummarizeIncidenceAllZero(t *testing.T) {
	summary := SummarizeIncidence(make([]float64, 90))
	assert.Equal(t, 0.0, summary.PeakCases)
	assert.Equal(t, 0, summary.ActiveDays)
}
