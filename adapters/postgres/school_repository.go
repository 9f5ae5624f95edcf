package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"measlesmon/domain/school"
	"measlesmon/internal/errors"
	"measlesmon/ports"

	"github.com/jmoiron/sqlx"
)

// schoolRepository implements the SchoolRepository interface
type schoolRepository struct {
	db *sqlx.DB
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *sqlx.DB) ports.SchoolRepository {
	return &schoolRepository{db: db}
}

// Migrate creates the schools table if it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS schools (
		name TEXT PRIMARY KEY,
		county TEXT NOT NULL DEFAULT '',
		enrolled INTEGER NOT NULL,
		immunization_rate DOUBLE PRECISION NOT NULL
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return errors.Wrap(err, "failed to create schools table")
	}
	return nil
}

// ReplaceAll swaps the stored dataset for a freshly loaded one inside
// a single transaction.
func (r *schoolRepository) ReplaceAll(ctx context.Context, schools []school.School) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schools`); err != nil {
		return fmt.Errorf("failed to clear schools: %w", err)
	}

	query := `INSERT INTO schools (name, county, enrolled, immunization_rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			county = EXCLUDED.county,
			enrolled = EXCLUDED.enrolled,
			immunization_rate = EXCLUDED.immunization_rate`

	for _, s := range schools {
		s = s.Normalize()
		if _, err := tx.ExecContext(ctx, query, s.Name, s.County, s.Enrolled, s.ImmunizationRate); err != nil {
			return fmt.Errorf("failed to insert school %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit school dataset: %w", err)
	}
	return nil
}

// List returns every listable school, ordered by name.
func (r *schoolRepository) List(ctx context.Context) ([]school.School, error) {
	query := `SELECT name, county, enrolled, immunization_rate
		FROM schools
		WHERE enrolled >= $1
		ORDER BY name ASC`

	var schools []school.School
	if err := r.db.SelectContext(ctx, &schools, query, school.MinEnrollmentForListing); err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}

// GetByName returns the school with the exact given name.
func (r *schoolRepository) GetByName(ctx context.Context, name string) (school.School, error) {
	query := `SELECT name, county, enrolled, immunization_rate FROM schools WHERE name = $1`

	var s school.School
	if err := r.db.GetContext(ctx, &s, query, name); err != nil {
		if err == sql.ErrNoRows {
			return s, errors.NotFound("school " + name)
		}
		return s, fmt.Errorf("failed to get school: %w", err)
	}
	return s, nil
}

// Count returns the number of stored schools.
func (r *schoolRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM schools`); err != nil {
		return 0, fmt.Errorf("failed to count schools: %w", err)
	}
	return count, nil
}
