package service

import (
	"fmt"
	"time"

	"exotico/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The template routine is a fixed two-week pattern expanded to a four-week
// cycle: pattern A on odd weeks, pattern B on even weeks. Every training
// day additionally carries a free cardio slot.

const (
	templateTotalWeeks  = 4
	defaultRestTime     = 60 // seconds between sets
	cardioSlotDuration  = "15-30 min"
	cardioSlotType      = "Libre"
	repsToFailure       = "al fallo"
	templateDescription = "Rutina profesional de 4 semanas con alternancia de grupos musculares. Incluye cardio diario de 15-30 minutos."
)

var trainingDayNames = [domain.TrainingDaysPerWeek]string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes",
}

type templateExercise struct {
	name        string
	muscleGroup string
	sets        int
	reps        string
}

type templateDay struct {
	muscleGroups []string
	exercises    []templateExercise
}

var chestBackDay = templateDay{
	muscleGroups: []string{"PECHO", "ESPALDA"},
	exercises: []templateExercise{
		{"Press inclinado con mancuernas", domain.MusclePecho, 3, "12"},
		{"Jalón al pecho", domain.MuscleEspalda, 3, "12"},
		{"Press plano", domain.MusclePecho, 3, "12"},
		{"Remo en T o remo con barra", domain.MuscleEspalda, 3, "12"},
		{"Aperturas en peck deck", domain.MusclePecho, 3, "12"},
		{"Pull over", domain.MuscleEspalda, 3, "12"},
	},
}

var legsDay = templateDay{
	muscleGroups: []string{"PIERNAS"},
	exercises: []templateExercise{
		{"Hack o prensa", domain.MusclePiernas, 3, "12"},
		{"Extensión de cuádriceps", domain.MusclePiernas, 3, repsToFailure},
		{"Curl femoral acostado o sentado", domain.MusclePiernas, 3, repsToFailure},
		{"Abductores", domain.MusclePiernas, 3, "12"},
		{"Aductores", domain.MusclePiernas, 3, "12"},
		{"Gemelos", domain.MusclePiernas, 3, "12"},
	},
}

var armsShouldersDay = templateDay{
	muscleGroups: []string{"BRAZOS", "HOMBROS"},
	exercises: []templateExercise{
		{"Press militar", domain.MuscleHombros, 3, "12"},
		{"Laterales unilateral", domain.MuscleHombros, 3, repsToFailure},
		{"Posterior en peck deck o en polea", domain.MuscleHombros, 3, repsToFailure},
		{"Press francés", domain.MuscleBrazos, 3, "12"},
		{"Extensión de tríceps con agarre en V", domain.MuscleBrazos, 3, "12"},
		{"Curl predicador", domain.MuscleBrazos, 3, "12"},
		{"Martillo", domain.MuscleBrazos, 3, "12"},
	},
}

var absDay = templateDay{
	muscleGroups: []string{"ABDOMEN"},
	exercises: []templateExercise{
		{"Elevación de piernas", domain.MuscleCore, 3, "12"},
		{"Crunch en polea", domain.MuscleCore, 3, "12"},
		{"Rueda abdominal", domain.MuscleCore, 3, "12"},
		{"Abdominales laterales (oblicuos)", domain.MuscleCore, 3, "12"},
	},
}

// patternA covers odd weeks, patternB even weeks. Tuesday (legs) and
// Thursday (abs) are shared; the chest/back and arms/shoulders days swap.
var patternA = [domain.TrainingDaysPerWeek]templateDay{
	chestBackDay, legsDay, armsShouldersDay, absDay, chestBackDay,
}

var patternB = [domain.TrainingDaysPerWeek]templateDay{
	armsShouldersDay, legsDay, chestBackDay, absDay, armsShouldersDay,
}

// GenerateTemplateProgram deterministically expands the two-week pattern
// into a four-week program for the given owner, with every completion flag
// cleared and the start date anchored at start.
func GenerateTemplateProgram(ownerID primitive.ObjectID, ownerName string, start time.Time) *domain.Program {
	weeks := make([]domain.Week, 0, templateTotalWeeks)
	for weekNum := 1; weekNum <= templateTotalWeeks; weekNum++ {
		pattern := patternA
		if weekNum%2 == 0 {
			pattern = patternB
		}

		days := make([]domain.Day, 0, domain.TrainingDaysPerWeek)
		for i, tmpl := range pattern {
			exercises := make([]domain.PlannedExercise, 0, len(tmpl.exercises))
			for _, ex := range tmpl.exercises {
				exercises = append(exercises, domain.PlannedExercise{
					ExerciseName: ex.name,
					MuscleGroup:  ex.muscleGroup,
					Sets:         ex.sets,
					Reps:         ex.reps,
					RestTime:     defaultRestTime,
				})
			}
			days = append(days, domain.Day{
				DayNumber:    i + 1,
				DayName:      trainingDayNames[i],
				MuscleGroups: tmpl.muscleGroups,
				Exercises:    exercises,
				Cardio: domain.CardioSlot{
					Type:     cardioSlotType,
					Duration: cardioSlotDuration,
				},
			})
		}

		weeks = append(weeks, domain.Week{
			WeekNumber: weekNum,
			Days:       days,
		})
	}

	return &domain.Program{
		OwnerID:           ownerID,
		Name:              fmt.Sprintf("Rutina ExoticoTramax - %s", ownerName),
		Kind:              domain.KindTemplate,
		Description:       templateDescription,
		Difficulty:        "Intermedio",
		Duration:          "45-60 min",
		Frequency:         "5 días/semana",
		CurrentWeek:       1,
		CurrentDay:        1,
		TotalWeeks:        templateTotalWeeks,
		Weeks:             weeks,
		TotalWorkouts:     domain.TrainingDaysPerWeek * templateTotalWeeks,
		CompletedWorkouts: 0,
		StartDate:         start,
		IsActive:          true,
		IsPaused:          false,
	}
}

// newCustomProgram builds the empty one-week shell for a user-assembled
// routine. Filling in the exercises is a separate flow.
func newCustomProgram(ownerID primitive.ObjectID, ownerName, customName string, start time.Time) *domain.Program {
	name := customName
	if name == "" {
		name = fmt.Sprintf("Rutina Personalizada - %s", ownerName)
	}
	return &domain.Program{
		OwnerID:     ownerID,
		Name:        name,
		Kind:        domain.KindCustom,
		Description: "Rutina personalizada creada por el usuario",
		Difficulty:  "Intermedio",
		Duration:    "Variable",
		Frequency:   "Personalizada",
		CurrentWeek: 1,
		CurrentDay:  1,
		TotalWeeks:  1,
		Weeks: []domain.Week{
			{WeekNumber: 1, Days: []domain.Day{}},
		},
		StartDate: start,
		IsActive:  true,
		IsPaused:  false,
	}
}
