package epi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidenceSeriesSumsToTotal(t *testing.T) {
	for _, kernel := range []Kernel{KernelPolynomialExp, KernelGamma} {
		series := IncidenceSeries(63.3, 90, kernel)
		require.Len(t, series, 90)

		var sum float64
		for _, v := range series {
			assert.GreaterOrEqual(t, v, 0.0)
			sum += v
		}
		assert.InEpsilon(t, 63.3, sum, 1e-6, "kernel %d", kernel)
	}
}

func TestIncidenceSeriesUnimodalPeak(t *testing.T) {
	for _, kernel := range []Kernel{KernelPolynomialExp, KernelGamma} {
		series := IncidenceSeries(100, 90, kernel)
		peak := PeakDay(series)
		assert.GreaterOrEqual(t, peak, 8, "kernel %d peaks too early", kernel)
		assert.LessOrEqual(t, peak, 35, "kernel %d peaks too late", kernel)

		// Monotone rise to the peak, monotone decay after it.
		for day := 1; day <= peak; day++ {
			assert.GreaterOrEqual(t, series[day], series[day-1], "kernel %d rising at day %d", kernel, day)
		}
		for day := peak + 1; day < len(series); day++ {
			assert.LessOrEqual(t, series[day], series[day-1], "kernel %d decaying at day %d", kernel, day)
		}
	}
}

func TestIncidenceSeriesPolynomialPeakNearTen(t *testing.T) {
	// day^5·exp(−day/2) has its maximum at day = 10.
	series := IncidenceSeries(100, 90, KernelPolynomialExp)
	assert.Equal(t, 10, PeakDay(series))
}

func TestIncidenceSeriesZeroTotal(t *testing.T) {
	series := IncidenceSeries(0, 90, KernelPolynomialExp)
	require.Len(t, series, 90)
	for _, v := range series {
		assert.Equal(t, 0.0, v)
	}
}

func TestIncidenceSeriesDegenerateInputs(t *testing.T) {
	assert.Nil(t, IncidenceSeries(10, 0, KernelPolynomialExp))
	assert.Nil(t, IncidenceSeries(10, -5, KernelPolynomialExp))

	series := IncidenceSeries(-3, 90, KernelPolynomialExp)
	require.Len(t, series, 90)
	for _, v := range series {
		assert.Equal(t, 0.0, v)
	}
}

func TestPeakDayEmpty(t *testing.T) {
	assert.Equal(t, -1, PeakDay(nil))
}
