// Package app wires the pure outbreak model to the dataset and the
// HTTP/CLI surfaces.
package app

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"measlesmon/domain/epi"
	"measlesmon/domain/school"
	"measlesmon/internal"
	"measlesmon/internal/analysis"
	"measlesmon/internal/errors"
	"measlesmon/ports"
)

// ScenarioService runs outbreak scenarios against the coverage dataset
// or custom inputs. All model state lives in the input; the service
// itself is safe for concurrent use.
type ScenarioService struct {
	repo      ports.SchoolRepository
	projector *epi.Projector
	defaults  epi.ScenarioInput
	logger    *internal.Logger
}

// NewScenarioService creates a scenario service. The defaults template
// supplies every parameter except enrollment and immunization rate.
func NewScenarioService(repo ports.SchoolRepository, projector *epi.Projector, defaults epi.ScenarioInput) *ScenarioService {
	if projector == nil {
		projector = epi.NewProjector()
	}
	return &ScenarioService{
		repo:      repo,
		projector: projector,
		defaults:  defaults,
		logger:    internal.DefaultLogger,
	}
}

// ScenarioRun is one completed simulation, ready for presentation.
type ScenarioRun struct {
	ID                    string                    `json:"id"`
	School                *school.School            `json:"school,omitempty"`
	Result                epi.ScenarioResult        `json:"result"`
	Rounded               epi.RoundedResult         `json:"rounded"`
	Summary               analysis.IncidenceSummary `json:"summary"`
	HerdImmunityThreshold float64                   `json:"herd_immunity_threshold"`
	CreatedAt             time.Time                 `json:"created_at"`
}

// RunForSchool simulates an outbreak at a named school from the
// coverage dataset.
func (s *ScenarioService) RunForSchool(ctx context.Context, name string) (*ScenarioRun, error) {
	sch, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	sch = sch.Normalize()

	in := s.defaults
	in.Enrollment = sch.Enrolled
	in.ImmunizationRate = sch.ImmunizationRate
	return s.run(in, &sch), nil
}

// RunCustom simulates an outbreak for user-entered enrollment and
// immunization values. Enrollment must be non-negative and finite
// before it reaches the model core.
func (s *ScenarioService) RunCustom(ctx context.Context, enrollment int, immunizationRate float64) (*ScenarioRun, error) {
	if enrollment < 0 {
		return nil, errors.InvalidInput("enrollment must be non-negative")
	}
	if math.IsNaN(immunizationRate) || math.IsInf(immunizationRate, 0) {
		return nil, errors.InvalidInput("immunization rate must be a finite number")
	}

	in := s.defaults
	in.Enrollment = enrollment
	in.ImmunizationRate = immunizationRate
	return s.run(in, nil), nil
}

func (s *ScenarioService) run(in epi.ScenarioInput, sch *school.School) *ScenarioRun {
	result := s.projector.Project(in)
	run := &ScenarioRun{
		ID:                    uuid.NewString(),
		School:                sch,
		Result:                result,
		Rounded:               result.Rounded(),
		Summary:               analysis.SummarizeIncidence(result.DailyIncidence),
		HerdImmunityThreshold: epi.HerdImmunityThreshold(in.R0),
		CreatedAt:             time.Now().UTC(),
	}
	s.logger.Debug("[scenario] run %s: enrollment=%d coverage=%.3f infected=%.1f",
		run.ID, in.Enrollment, in.ImmunizationRate, result.TotalInfected)
	return run
}

// Comparison pairs a school's current-coverage scenario with a what-if
// coverage scenario.
type Comparison struct {
	Current           *ScenarioRun `json:"current"`
	WhatIf            *ScenarioRun `json:"what_if"`
	InfectionsAverted float64      `json:"infections_averted"`
	MissedDaysAverted float64      `json:"missed_days_averted"`
}

// Compare runs the current and what-if scenarios for a school. The two
// runs are independent pure computations, so they execute concurrently.
func (s *ScenarioService) Compare(ctx context.Context, name string, whatIfRate float64) (*Comparison, error) {
	if math.IsNaN(whatIfRate) || math.IsInf(whatIfRate, 0) {
		return nil, errors.InvalidInput("what-if immunization rate must be a finite number")
	}

	sch, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	sch = sch.Normalize()

	var current, whatIf *ScenarioRun
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		in := s.defaults
		in.Enrollment = sch.Enrolled
		in.ImmunizationRate = sch.ImmunizationRate
		current = s.run(in, &sch)
		return nil
	})
	g.Go(func() error {
		in := s.defaults
		in.Enrollment = sch.Enrolled
		in.ImmunizationRate = whatIfRate
		whatIf = s.run(in, &sch)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Comparison{
		Current:           current,
		WhatIf:            whatIf,
		InfectionsAverted: current.Result.TotalInfected - whatIf.Result.TotalInfected,
		MissedDaysAverted: current.Result.MissedDays - whatIf.Result.MissedDays,
	}, nil
}

// ListSchools returns the listable schools from the dataset.
func (s *ScenarioService) ListSchools(ctx context.Context) ([]school.School, error) {
	return s.repo.List(ctx)
}

// Calendar builds the exclusion calendar for an outbreak beginning at
// start, using the configured quarantine duration.
func (s *ScenarioService) Calendar(start time.Time) []school.CalendarDay {
	return school.ExclusionCalendar(start, s.defaults.QuarantineDays)
}
