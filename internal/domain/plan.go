// internal/domain/plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanExercise is an exercise scheduled inside a plan day. It carries a
// snapshot of the catalog entry plus the member's set/rep targets, so a
// stored plan stays renderable even if the catalog changes.
type PlanExercise struct {
	ExerciseID   string `bson:"exerciseId" json:"id"`
	Name         string `bson:"name" json:"name"`
	MuscleGroup  string `bson:"muscleGroup" json:"muscleGroup"`
	GifURL       string `bson:"gifUrl" json:"gif_url"`
	Description1 string `bson:"description1,omitempty" json:"description1"`
	Description2 string `bson:"description2,omitempty" json:"description2"`
	Sets         int    `bson:"sets" json:"sets"` // Always >= 1
	Reps         int    `bson:"reps" json:"reps"` // Always >= 1
}

// Day is one training session within a plan. Exercise order is the
// execution order and is preserved exactly as edited.
type Day struct {
	Name      string         `bson:"name" json:"name"`
	Exercises []PlanExercise `bson:"exercises" json:"exercises"`
}

// Plan is a named multi-day workout routine owned by a single member.
// A plan always has at least one day; ID and CreatedAt are assigned by
// the repository on creation and immutable afterwards.
type Plan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Days        []Day              `bson:"days" json:"days"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
