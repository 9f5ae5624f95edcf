package ports

import (
	"context"

	"measlesmon/domain/school"
)

// CoverageReader loads the school coverage dataset from some source:
// a local CSV or Excel file, or the published remote CSV.
type CoverageReader interface {
	Read(ctx context.Context) ([]school.School, error)
}
