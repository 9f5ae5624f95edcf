// Package memory provides the in-memory school repository used when no
// database is configured: the dataset is loaded once at startup and
// served from a read-mostly map.
package memory

import (
	"context"
	"sync"

	"measlesmon/domain/school"
	"measlesmon/internal/errors"
	"measlesmon/ports"
)

type schoolRepository struct {
	mu      sync.RWMutex
	byName  map[string]school.School
	ordered []school.School
}

// NewSchoolRepository creates an empty in-memory school repository
func NewSchoolRepository() ports.SchoolRepository {
	return &schoolRepository{byName: make(map[string]school.School)}
}

func (r *schoolRepository) ReplaceAll(ctx context.Context, schools []school.School) error {
	byName := make(map[string]school.School, len(schools))
	ordered := make([]school.School, 0, len(schools))
	for _, s := range schools {
		s = s.Normalize()
		byName[s.Name] = s
		if s.Listable() {
			ordered = append(ordered, s)
		}
	}
	school.SortByName(ordered)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = byName
	r.ordered = ordered
	return nil
}

func (r *schoolRepository) List(ctx context.Context) ([]school.School, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]school.School, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *schoolRepository) GetByName(ctx context.Context, name string) (school.School, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byName[name]
	if !ok {
		return school.School{}, errors.NotFound("school " + name)
	}
	return s, nil
}

func (r *schoolRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName), nil
}
