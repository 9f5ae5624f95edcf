package epi

// Default model parameters, shared by every call site. Sources are the
// ones cited in the dashboard: R0 ≈ 12 (PMID 28757186), hospitalization
// ≈ 20% (NFID), death ≈ 0.03% (UChicago Medicine), isolation 4 days
// post-rash (AAC R9-6-355), quarantine 21 days after last exposure (ADHS).
const (
	DefaultR0                  = 12.0
	DefaultHospitalizationRate = 0.20
	DefaultDeathRate           = 0.0003
	DefaultIsolationDays       = 4
	DefaultQuarantineDays      = 21
	DefaultSimDays             = 90
)

// Bounds for user-adjustable R0 sliders in the presentation layer.
const (
	R0Min = 2.0
	R0Max = 18.0
)

// ScenarioInput holds the parameters of one outbreak simulation run.
// Instances are passed by value; the core never mutates caller state.
type ScenarioInput struct {
	Enrollment          int     `json:"enrollment"`
	ImmunizationRate    float64 `json:"immunization_rate"`    // fraction in [0,1], clamped at use
	R0                  float64 `json:"r0"`                   // basic reproduction number
	HospitalizationRate float64 `json:"hospitalization_rate"` // fraction of infections
	DeathRate           float64 `json:"death_rate"`           // fraction of infections
	IsolationDays       int     `json:"isolation_days"`       // exclusion for infected students
	QuarantineDays      int     `json:"quarantine_days"`      // exclusion for exposed, uninfected students
	SimDays             int     `json:"sim_days"`             // incidence series horizon
}

// NewScenarioInput builds an input from enrollment and immunization rate
// with every other parameter at its default.
func NewScenarioInput(enrollment int, immunizationRate float64) ScenarioInput {
	return ScenarioInput{
		Enrollment:          enrollment,
		ImmunizationRate:    immunizationRate,
		R0:                  DefaultR0,
		HospitalizationRate: DefaultHospitalizationRate,
		DeathRate:           DefaultDeathRate,
		IsolationDays:       DefaultIsolationDays,
		QuarantineDays:      DefaultQuarantineDays,
		SimDays:             DefaultSimDays,
	}
}

// ScenarioResult holds every derived quantity for one scenario.
// All counts stay real-valued; rounding happens once, at the
// presentation boundary (see Rounded).
type ScenarioResult struct {
	Input              ScenarioInput `json:"input"`
	SusceptibleCount   float64       `json:"susceptible_count"`
	SusceptibleShare   float64       `json:"susceptible_share"`
	AttackShare        float64       `json:"attack_share"` // fraction of susceptibles infected
	TotalInfected      float64       `json:"total_infected"`
	Hospitalized       float64       `json:"hospitalized"`
	Deaths             float64       `json:"deaths"`
	ExposedNotInfected float64       `json:"exposed_not_infected"`
	MissedDays         float64       `json:"missed_days"`
	DailyIncidence     []float64     `json:"daily_incidence"` // expected new infections per day
}

// RoundedResult is the whole-person view of a ScenarioResult, for display.
type RoundedResult struct {
	SusceptibleCount   int `json:"susceptible_count"`
	TotalInfected      int `json:"total_infected"`
	Hospitalized       int `json:"hospitalized"`
	Deaths             int `json:"deaths"`
	ExposedNotInfected int `json:"exposed_not_infected"`
	MissedDays         int `json:"missed_days"`
}

// Rounded rounds each derived count to the nearest whole person or day.
func (r ScenarioResult) Rounded() RoundedResult {
	return RoundedResult{
		SusceptibleCount:   roundToInt(r.SusceptibleCount),
		TotalInfected:      roundToInt(r.TotalInfected),
		Hospitalized:       roundToInt(r.Hospitalized),
		Deaths:             roundToInt(r.Deaths),
		ExposedNotInfected: roundToInt(r.ExposedNotInfected),
		MissedDays:         roundToInt(r.MissedDays),
	}
}

// HerdImmunityThreshold returns 1 − 1/r0, the minimum immune fraction
// above which sustained transmission cannot occur. Returns 0 for r0 ≤ 1.
func HerdImmunityThreshold(r0 float64) float64 {
	if r0 <= 1 {
		return 0
	}
	return 1 - 1/r0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundToInt(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}
