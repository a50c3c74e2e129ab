package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Units selects how measurements are presented to the user.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Profile holds the body measurements used for BMI and calorie estimates.
type Profile struct {
	Age    int     `bson:"age" json:"age"`
	Weight float64 `bson:"weight" json:"weight"` // kg
	Height float64 `bson:"height" json:"height"` // cm
	BMI    float64 `bson:"bmi" json:"bmi"`       // derived, never hand-set
}

// Preferences holds display and goal settings.
type Preferences struct {
	Units Units    `bson:"units" json:"units"`
	Goals []string `bson:"goals,omitempty" json:"goals,omitempty"`
}

// User represents an account in the system.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Profile      Profile            `bson:"profile" json:"profile"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RecalculateBMI recomputes the BMI from the stored weight and height,
// rounded to one decimal. Missing measurements leave the BMI at zero.
func (p *Profile) RecalculateBMI() {
	if p.Height <= 0 || p.Weight <= 0 {
		p.BMI = 0
		return
	}
	meters := p.Height / 100
	p.BMI = math.Round(p.Weight/(meters*meters)*10) / 10
}
