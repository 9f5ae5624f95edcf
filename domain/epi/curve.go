package epi

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kernel shapes the 90-day incidence curve. Both kernels are stylized
// stand-ins for a true transmission-dynamics simulation: each rises to
// a single peak near day 10–14 and decays smoothly afterward.
type Kernel int

const (
	// KernelPolynomialExp is day^5 · exp(−day/2), the original curve.
	KernelPolynomialExp Kernel = iota
	// KernelGamma is a Gamma(k, θ) density sampled per day, with k = 10
	// and θ chosen so the bulk of the mass sits inside the horizon.
	KernelGamma
)

// gammaKernelShape is the shape parameter k of the Gamma kernel; the
// scale is derived from the horizon as θ = days/(k·2.5).
const gammaKernelShape = 10.0

// IncidenceSeries builds the expected-new-infections-per-day series:
// the kernel evaluated on 0..days−1, normalized to sum 1, scaled by
// totalInfected. The series sums to totalInfected up to float64
// rounding. Non-positive days or totalInfected yields an all-zero
// series (still of length max(days, 0)).
func IncidenceSeries(totalInfected float64, days int, kernel Kernel) []float64 {
	if days <= 0 {
		return nil
	}
	series := make([]float64, days)
	if totalInfected <= 0 || math.IsNaN(totalInfected) {
		return series
	}

	var sum float64
	for day := 0; day < days; day++ {
		w := kernelWeight(kernel, float64(day), days)
		series[day] = w
		sum += w
	}
	if sum <= 0 {
		return series
	}
	for day := range series {
		series[day] = series[day] / sum * totalInfected
	}
	return series
}

func kernelWeight(kernel Kernel, day float64, days int) float64 {
	switch kernel {
	case KernelGamma:
		theta := float64(days) / (gammaKernelShape * 2.5)
		g := distuv.Gamma{Alpha: gammaKernelShape, Beta: 1 / theta}
		return g.Prob(day)
	default:
		return math.Pow(day, 5) * math.Exp(-day/2)
	}
}

// PeakDay returns the index of the largest value in the series, or -1
// for an empty series. Ties resolve to the earliest day.
func PeakDay(series []float64) int {
	peak := -1
	best := math.Inf(-1)
	for day, v := range series {
		if v > best {
			best = v
			peak = day
		}
	}
	return peak
}
