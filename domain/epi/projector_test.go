package epi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectReferenceScenario(t *testing.T) {
	in := NewScenarioInput(500, 0.85)
	res := Project(in)

	assert.InDelta(t, 75.0, res.SusceptibleCount, 1e-9)
	assert.InDelta(t, 0.15, res.SusceptibleShare, 1e-9)
	assert.InDelta(t, 0.7325, res.AttackShare, 1e-3)
	assert.InDelta(t, 54.93, res.TotalInfected, 0.1)
	assert.InDelta(t, res.TotalInfected*0.20, res.Hospitalized, 1e-9)
	assert.InDelta(t, res.TotalInfected*0.0003, res.Deaths, 1e-9)
	assert.InDelta(t, 75.0-res.TotalInfected, res.ExposedNotInfected, 1e-9)

	wantMissed := res.TotalInfected*4 + res.ExposedNotInfected*21
	assert.InDelta(t, wantMissed, res.MissedDays, 1e-9)
}

func TestProjectAboveHerdImmunityThreshold(t *testing.T) {
	// 95% coverage sits above 1−1/12 ≈ 0.917: sub-critical outbreak.
	res := Project(NewScenarioInput(500, 0.95))

	assert.InDelta(t, 25.0, res.SusceptibleCount, 1e-9)
	assert.InDelta(t, 0.05, res.SusceptibleShare, 1e-9)
	assert.Less(t, res.TotalInfected, 1e-8)
}

func TestProjectFullCoverage(t *testing.T) {
	res := Project(NewScenarioInput(800, 1.0))

	assert.Equal(t, 0.0, res.SusceptibleCount)
	assert.Equal(t, 0.0, res.TotalInfected)
	assert.Equal(t, 0.0, res.ExposedNotInfected)
	assert.Equal(t, 0.0, res.MissedDays)
}

func TestProjectZeroEnrollment(t *testing.T) {
	res := Project(NewScenarioInput(0, 0.5))

	assert.Equal(t, 0.0, res.SusceptibleCount)
	assert.Equal(t, 0.0, res.SusceptibleShare, "share is defined as 0 when enrollment is 0")
	assert.Equal(t, 0.0, res.TotalInfected)
	assert.Equal(t, 0.0, res.Hospitalized)
	assert.Equal(t, 0.0, res.Deaths)
	assert.Equal(t, 0.0, res.MissedDays)
}

func TestProjectNegativeEnrollmentCoerced(t *testing.T) {
	res := Project(NewScenarioInput(-10, 0.5))
	assert.Equal(t, 0.0, res.SusceptibleCount)
	assert.Equal(t, 0.0, res.TotalInfected)
}

func TestProjectClampsRates(t *testing.T) {
	in := NewScenarioInput(500, 1.4) // over-reported coverage
	res := Project(in)
	assert.Equal(t, 0.0, res.SusceptibleCount)

	in = NewScenarioInput(500, -0.2) // clamps to fully susceptible
	res = Project(in)
	assert.InDelta(t, 500.0, res.SusceptibleCount, 1e-9)

	in = NewScenarioInput(500, 0.5)
	in.HospitalizationRate = 2.5
	in.DeathRate = 1.7
	res = Project(in)
	assert.LessOrEqual(t, res.Hospitalized, res.TotalInfected)
	assert.LessOrEqual(t, res.Deaths, res.TotalInfected)
}

func TestProjectMonotoneInImmunizationRate(t *testing.T) {
	prev := math.Inf(1)
	for rate := 0.0; rate <= 1.0; rate += 0.05 {
		res := Project(NewScenarioInput(500, rate))
		assert.LessOrEqual(t, res.TotalInfected, prev+1e-9,
			"totalInfected must be weakly decreasing, rate=%.2f", rate)
		prev = res.TotalInfected
	}
}

func TestProjectIncidenceConservation(t *testing.T) {
	res := Project(NewScenarioInput(500, 0.85))
	require.Len(t, res.DailyIncidence, DefaultSimDays)

	var sum float64
	for _, v := range res.DailyIncidence {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InEpsilon(t, res.TotalInfected, sum, 1e-6)
}

func TestProjectDeterministic(t *testing.T) {
	in := NewScenarioInput(347, 0.81)
	a := Project(in)
	b := Project(in)
	assert.Equal(t, a, b)
}

func TestRounded(t *testing.T) {
	res := ScenarioResult{
		SusceptibleCount:   74.6,
		TotalInfected:      54.93,
		Hospitalized:       10.99,
		Deaths:             0.016,
		ExposedNotInfected: 20.07,
		MissedDays:         641.1,
	}
	r := res.Rounded()
	assert.Equal(t, 75, r.SusceptibleCount)
	assert.Equal(t, 55, r.TotalInfected)
	assert.Equal(t, 11, r.Hospitalized)
	assert.Equal(t, 0, r.Deaths)
	assert.Equal(t, 20, r.ExposedNotInfected)
	assert.Equal(t, 641, r.MissedDays)
}
