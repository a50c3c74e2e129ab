package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Valid catalog muscle groups.
const (
	MusclePecho   = "pecho"
	MuscleEspalda = "espalda"
	MusclePiernas = "piernas"
	MuscleBrazos  = "brazos"
	MuscleHombros = "hombros"
	MuscleCore    = "core"
	MuscleCardio  = "cardio"
)

// MuscleGroups lists the accepted values for Exercise.MuscleGroup.
var MuscleGroups = []string{
	MusclePecho, MuscleEspalda, MusclePiernas, MuscleBrazos,
	MuscleHombros, MuscleCore, MuscleCardio,
}

// IsValidMuscleGroup reports whether g is one of the catalog groups.
func IsValidMuscleGroup(g string) bool {
	for _, mg := range MuscleGroups {
		if mg == g {
			return true
		}
	}
	return false
}

// DefaultCaloriesPerMinute is used when an exercise is created without an
// explicit burn rate.
const DefaultCaloriesPerMinute = 5.0

// Exercise is a catalog entry users can browse. Media files (demo video,
// image) live in object storage; only their keys are stored here.
type Exercise struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	MuscleGroup       string             `bson:"muscleGroup" json:"muscleGroup"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Instructions      []string           `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Equipment         string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Difficulty        string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	CaloriesPerMinute float64            `bson:"caloriesPerMinute" json:"caloriesPerMinute"`
	VideoKey          string             `bson:"videoKey,omitempty" json:"-"`
	ImageKey          string             `bson:"imageKey,omitempty" json:"-"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CaloriesBurned estimates the calories burned by performing this exercise
// for the given number of minutes.
func (e *Exercise) CaloriesBurned(minutes float64) float64 {
	rate := e.CaloriesPerMinute
	if rate <= 0 {
		rate = DefaultCaloriesPerMinute
	}
	return rate * minutes
}
