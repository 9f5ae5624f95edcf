package ports

import (
	"context"

	"measlesmon/domain/school"
)

// SchoolRepository provides access to the persisted coverage dataset.
type SchoolRepository interface {
	// ReplaceAll swaps the stored dataset for a freshly loaded one.
	ReplaceAll(ctx context.Context, schools []school.School) error

	// List returns every listable school, ordered by name.
	List(ctx context.Context) ([]school.School, error)

	// GetByName returns the school with the exact given name.
	GetByName(ctx context.Context, name string) (school.School, error)

	// Count returns the number of stored schools.
	Count(ctx context.Context) (int, error)
}
