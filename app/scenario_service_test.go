package app

import (
	"context"
	"math"
	"testing"
	"time"

	"measlesmon/adapters/memory"
	"measlesmon/domain/epi"
	"measlesmon/domain/school"
	"measlesmon/internal/errors"
	"measlesmon/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*ScenarioService, ports.SchoolRepository) {
	t.Helper()
	repo := memory.NewSchoolRepository()
	err := repo.ReplaceAll(context.Background(), []school.School{
		{Name: "Acacia Elementary", Enrolled: 500, ImmunizationRate: 0.85},
		{Name: "Zuni Hills", Enrolled: 300, ImmunizationRate: 0.96},
	})
	require.NoError(t, err)

	defaults := epi.NewScenarioInput(0, 0)
	return NewScenarioService(repo, epi.NewProjector(), defaults), repo
}

func TestRunForSchool(t *testing.T) {
	svc, _ := newTestService(t)

	run, err := svc.RunForSchool(context.Background(), "Acacia Elementary")
	require.NoError(t, err)

	require.NotNil(t, run.School)
	assert.Equal(t, "Acacia Elementary", run.School.Name)
	assert.NotEmpty(t, run.ID)
	assert.InDelta(t, 75.0, run.Result.SusceptibleCount, 1e-9)
	assert.InDelta(t, 0.9167, run.HerdImmunityThreshold, 1e-4)
	assert.Equal(t, run.Result.Rounded(), run.Rounded)
	assert.InEpsilon(t, run.Result.TotalInfected, run.Summary.Cumulative, 1e-6)
}

func TestRunForSchoolNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RunForSchool(context.Background(), "Missing School")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestRunCustom(t *testing.T) {
	svc, _ := newTestService(t)

	run, err := svc.RunCustom(context.Background(), 500, 0.85)
	require.NoError(t, err)
	assert.Nil(t, run.School)
	assert.InDelta(t, 75.0, run.Result.SusceptibleCount, 1e-9)
}

func TestRunCustomRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RunCustom(context.Background(), -1, 0.85)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = svc.RunCustom(context.Background(), 500, math.NaN())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCompare(t *testing.T) {
	svc, _ := newTestService(t)

	cmp, err := svc.Compare(context.Background(), "Acacia Elementary", 0.95)
	require.NoError(t, err)

	// 95% coverage is above the herd-immunity threshold; nearly every
	// projected infection is averted.
	assert.Greater(t, cmp.InfectionsAverted, 50.0)
	assert.Greater(t, cmp.Current.Result.TotalInfected, cmp.WhatIf.Result.TotalInfected)
	assert.Less(t, cmp.WhatIf.Result.TotalInfected, 1e-6)
	assert.NotEqual(t, cmp.Current.ID, cmp.WhatIf.ID)
}

func TestCompareRejectsNaN(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Compare(context.Background(), "Acacia Elementary", math.NaN())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestCalendar(t *testing.T) {
	svc, _ := newTestService(t)

	days := svc.Calendar(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	require.Len(t, days, school.CalendarHorizonDays)
	assert.True(t, days[0].Excluded)
	assert.True(t, days[20].Excluded)
	assert.False(t, days[21].Excluded)
}

func TestListSchools(t *testing.T) {
	svc, _ := newTestService(t)

	schools, err := svc.ListSchools(context.Background())
	require.NoError(t, err)
	require.Len(t, schools, 2)
	assert.Equal(t, "Acacia Elementary", schools[0].Name)
}
