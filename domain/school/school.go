// Package school holds the school-coverage records the simulator runs
// against and the exclusion-calendar math derived from a scenario.
package school

import "sort"

// MinEnrollmentForListing excludes very small kindergarten cohorts from
// the school list; coverage percentages below this size are too noisy
// to present.
const MinEnrollmentForListing = 20

// School is one row of the coverage dataset: reported kindergarten
// enrollment and MMR immunization rate for a named school.
type School struct {
	Name             string  `json:"name" db:"name"`
	County           string  `json:"county,omitempty" db:"county"`
	Enrolled         int     `json:"enrolled" db:"enrolled"`
	ImmunizationRate float64 `json:"immunization_rate" db:"immunization_rate"`
}

// Susceptible returns the expected number of unprotected students.
func (s School) Susceptible() float64 {
	return float64(s.Enrolled) * (1 - s.ImmunizationRate)
}

// Listable reports whether the school is large enough to present.
func (s School) Listable() bool {
	return s.Enrolled >= MinEnrollmentForListing
}

// Normalize clamps the immunization rate into [0,1] and coerces
// negative enrollment to zero. Upstream data is not trusted to be
// pre-clamped; every ingest path calls this before the record is used.
func (s School) Normalize() School {
	if s.ImmunizationRate < 0 {
		s.ImmunizationRate = 0
	}
	if s.ImmunizationRate > 1 {
		s.ImmunizationRate = 1
	}
	if s.Enrolled < 0 {
		s.Enrolled = 0
	}
	return s
}

// SortByName orders schools alphabetically in place, the order the
// selection list presents them in.
func SortByName(schools []School) {
	sort.Slice(schools, func(i, j int) bool {
		return schools[i].Name < schools[j].Name
	})
}
