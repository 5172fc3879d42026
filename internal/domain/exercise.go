// internal/domain/exercise.go
package domain

// Exercise is a single entry in the static exercise catalog.
// Catalog entries are immutable reference data; they are never persisted
// by this service, only embedded into plan days as snapshots.
type Exercise struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscleGroup"` // e.g., "chest", "back", "legs"
	GifURL       string `json:"gif_url"`
	Description1 string `json:"description1"` // Short summary shown on cards
	Description2 string `json:"description2"` // Execution detail
}
