package epi

// Projector turns a ScenarioInput into a ScenarioResult. The zero
// value is not useful; use NewProjector. Every method is pure and safe
// for concurrent use.
type Projector struct {
	// Iterations is the solver's fixed iteration count.
	Iterations int
	// Kernel selects the incidence-curve shape.
	Kernel Kernel
}

// NewProjector returns a projector with the reference behavior: 60
// solver iterations and the polynomial-exponential kernel.
func NewProjector() *Projector {
	return &Projector{
		Iterations: DefaultSolverIterations,
		Kernel:     KernelPolynomialExp,
	}
}

// Project computes every derived quantity for the scenario.
//
// Counts stay real-valued throughout; nothing is rounded here. The
// immunization, hospitalization, and death rates are clamped to [0,1]
// before use, negative enrollment is coerced to 0, and division
// by zero enrollment is defined away (susceptible share 0). There are
// no error returns: the model is a best-effort estimator and coerces
// rather than rejects.
func (p *Projector) Project(in ScenarioInput) ScenarioResult {
	enrollment := float64(in.Enrollment)
	if enrollment < 0 {
		enrollment = 0
	}

	susceptible := enrollment * (1 - clamp01(in.ImmunizationRate))

	var share float64
	if enrollment > 0 {
		share = susceptible / enrollment
	}

	attack := SolveN(in.R0, share, p.Iterations)
	infected := attack * susceptible

	hospitalized := infected * clamp01(in.HospitalizationRate)
	if hospitalized > infected {
		hospitalized = infected
	}
	// Deaths are an independent fraction of infections, not a subset of
	// hospitalizations; capped at total infections all the same.
	deaths := infected * clamp01(in.DeathRate)
	if deaths > infected {
		deaths = infected
	}

	exposed := susceptible - infected
	if exposed < 0 {
		exposed = 0
	}

	missed := infected*float64(in.IsolationDays) + exposed*float64(in.QuarantineDays)

	days := in.SimDays
	if days <= 0 {
		days = DefaultSimDays
	}

	return ScenarioResult{
		Input:              in,
		SusceptibleCount:   susceptible,
		SusceptibleShare:   share,
		AttackShare:        attack,
		TotalInfected:      infected,
		Hospitalized:       hospitalized,
		Deaths:             deaths,
		ExposedNotInfected: exposed,
		MissedDays:         missed,
		DailyIncidence:     IncidenceSeries(infected, days, p.Kernel),
	}
}

// Project runs a scenario with the reference projector settings.
func Project(in ScenarioInput) ScenarioResult {
	return NewProjector().Project(in)
}
