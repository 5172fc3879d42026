// Package catalog serves the static exercise library. The dataset is
// compiled into the binary and loaded once; all lookups are read-only
// over an in-memory table.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	_ "embed"

	"flexzone/fitness-platform/internal/domain"
)

//go:embed data/exercises.json
var rawExercises []byte

// rawEntry mirrors the dataset file, which groups exercises by muscle
// group key and omits the group from each entry.
type rawEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	GifURL       string `json:"gif_url"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
}

// Catalog is the immutable in-memory exercise table.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]domain.Exercise
	byGroup   map[string][]domain.Exercise
	groups    []string
}

// Load parses the embedded dataset and builds the lookup indexes.
func Load() (*Catalog, error) {
	var grouped map[string][]rawEntry
	if err := json.Unmarshal(rawExercises, &grouped); err != nil {
		return nil, fmt.Errorf("parse exercise dataset: %w", err)
	}

	c := &Catalog{
		byID:    make(map[string]domain.Exercise),
		byGroup: make(map[string][]domain.Exercise),
	}
	for group, entries := range grouped {
		for _, e := range entries {
			ex := domain.Exercise{
				ID:           e.ID,
				Name:         e.Name,
				MuscleGroup:  group,
				GifURL:       e.GifURL,
				Description1: e.Description1,
				Description2: e.Description2,
			}
			if _, dup := c.byID[ex.ID]; dup {
				return nil, fmt.Errorf("duplicate exercise id %q in dataset", ex.ID)
			}
			c.byID[ex.ID] = ex
			c.byGroup[group] = append(c.byGroup[group], ex)
		}
		c.groups = append(c.groups, group)
	}
	// Deterministic ordering regardless of map iteration.
	sort.Strings(c.groups)
	for _, group := range c.groups {
		list := c.byGroup[group]
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		c.exercises = append(c.exercises, list...)
	}
	return c, nil
}

// All returns every exercise, grouped by muscle group then ordered by id.
func (c *Catalog) All() []domain.Exercise {
	return append([]domain.Exercise(nil), c.exercises...)
}

// MuscleGroups returns the sorted list of known muscle groups.
func (c *Catalog) MuscleGroups() []string {
	return append([]string(nil), c.groups...)
}

// ListByMuscleGroup returns the exercises for one muscle group. The group
// key is matched case-insensitively; an unknown group yields an empty
// slice, not an error.
func (c *Catalog) ListByMuscleGroup(group string) []domain.Exercise {
	list := c.byGroup[strings.ToLower(strings.TrimSpace(group))]
	return append([]domain.Exercise(nil), list...)
}

// Search returns exercises whose name contains term, case-insensitively.
// An empty term matches everything.
func (c *Catalog) Search(term string) []domain.Exercise {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []domain.Exercise
	for _, ex := range c.exercises {
		if strings.Contains(strings.ToLower(ex.Name), term) {
			out = append(out, ex)
		}
	}
	return out
}

// GetByID looks up one exercise; ok is false for an unknown id.
func (c *Catalog) GetByID(id string) (domain.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}
