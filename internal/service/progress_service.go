package service

import (
	"time"

	"exotico/fitness-tracker/internal/domain"
)

// streakScanWindow bounds the backward walk of the streak computation.
const streakScanWindow = 30 // days

// TodayStatus describes what the active program expects of the user today.
// NotStarted (program begins in the future) and RestDay (weekend) are both
// valid states with HasWorkout=false, not errors.
type TodayStatus struct {
	HasWorkout     bool                     `json:"hasWorkout"`
	IsRestDay      bool                     `json:"isRestDay"`
	DayNumber      int                      `json:"dayNumber"`
	DayName        string                   `json:"dayName"`
	MuscleGroups   []string                 `json:"muscleGroups"`
	ExercisesCount int                      `json:"exercisesCount"`
	Completed      bool                     `json:"completed"`
	Exercises      []domain.PlannedExercise `json:"exercises,omitempty"`
	Cardio         *domain.CardioSlot       `json:"cardio,omitempty"`
}

// DayStatus is one entry of the rolling 7-day history view.
type DayStatus struct {
	Day          string    `json:"day"` // single-letter weekday label
	Date         time.Time `json:"date"`
	HasWorkout   bool      `json:"hasWorkout"`
	Completed    bool      `json:"completed"`
	MuscleGroups []string  `json:"muscleGroups,omitempty"`
}

// Stats is the summary block shown on the dashboard.
type Stats struct {
	TotalWorkouts     int `json:"totalWorkouts"`
	CompletedWorkouts int `json:"completedWorkouts"`
	CurrentStreak     int `json:"currentStreak"`
	WeekProgress      int `json:"weekProgress"` // percent of this week's training days completed
}

// weekday display labels indexed by ISO weekday (1=Monday).
var weekdayLabels = [8]string{"", "L", "M", "M", "J", "V", "S", "D"}

var weekendNames = map[int]string{6: "Sábado", 7: "Domingo"}

// ProgressService derives read-only progress facts from a program and the
// wall clock. It holds no state and performs no I/O; callers load the
// program and pass "now" explicitly.
type ProgressService interface {
	TodayStatus(program *domain.Program, now time.Time) TodayStatus
	WeekHistory(program *domain.Program, now time.Time) []DayStatus
	Streak(program *domain.Program, now time.Time) int
	Stats(program *domain.Program, now time.Time) Stats
}

type progressService struct{}

// NewProgressService creates a new instance of progressService.
func NewProgressService() ProgressService {
	return progressService{}
}

// TodayStatus resolves today against the program cycle. Weekends are rest
// days; dates before the start date and structural misses both degrade to
// "no workout today".
func (progressService) TodayStatus(program *domain.Program, now time.Time) TodayStatus {
	if program == nil {
		return TodayStatus{MuscleGroups: []string{}}
	}

	weekday := domain.ISOWeekday(now)
	if weekday > domain.TrainingDaysPerWeek {
		return TodayStatus{
			IsRestDay:    true,
			DayName:      weekendNames[weekday],
			MuscleGroups: []string{},
		}
	}

	day, ok := program.ResolveTrainingDay(now)
	if !ok {
		return TodayStatus{MuscleGroups: []string{}}
	}

	cardio := day.Cardio
	return TodayStatus{
		HasWorkout:     true,
		DayNumber:      day.DayNumber,
		DayName:        day.DayName,
		MuscleGroups:   day.MuscleGroups,
		ExercisesCount: len(day.Exercises),
		Completed:      day.Completed,
		Exercises:      day.Exercises,
		Cardio:         &cardio,
	}
}

// WeekHistory returns exactly 7 entries for the calendar days ending
// today, oldest first. Weekend entries report hasWorkout=false and
// completed=true — rest days count as vacuously satisfied for display.
// Weekdays the cycle cannot resolve (before the start date, malformed
// weeks) report hasWorkout=false, completed=false.
func (progressService) WeekHistory(program *domain.Program, now time.Time) []DayStatus {
	history := make([]DayStatus, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		weekday := domain.ISOWeekday(date)

		entry := DayStatus{
			Day:          weekdayLabels[weekday],
			Date:         date,
			MuscleGroups: []string{},
		}

		if weekday > domain.TrainingDaysPerWeek {
			entry.Completed = true
			history = append(history, entry)
			continue
		}

		if program != nil {
			if day, ok := program.ResolveTrainingDay(date); ok {
				entry.HasWorkout = true
				entry.Completed = day.Completed
				entry.MuscleGroups = day.MuscleGroups
			}
		}
		history = append(history, entry)
	}
	return history
}

// Streak counts consecutive completed training days walking backward from
// today, skipping weekends. An incomplete training day stops the count —
// including today itself. Days before the program start stop the scan:
// there is nothing to have completed before the program existed. The walk
// inspects at most 30 calendar days.
func (progressService) Streak(program *domain.Program, now time.Time) int {
	if program == nil {
		return 0
	}

	streak := 0
	for i := 0; i < streakScanWindow; i++ {
		date := now.AddDate(0, 0, -i)
		if !domain.IsTrainingWeekday(date) {
			continue
		}
		if program.ElapsedDays(date) < 0 {
			break
		}
		day, ok := program.ResolveTrainingDay(date)
		if !ok || !day.Completed {
			break
		}
		streak++
	}
	return streak
}

// Stats builds the dashboard summary from the denormalized counters plus
// the derived streak and trailing-week completion rate.
func (s progressService) Stats(program *domain.Program, now time.Time) Stats {
	if program == nil {
		return Stats{}
	}

	history := s.WeekHistory(program, now)
	trainingDays := 0
	completedDays := 0
	for _, entry := range history {
		if entry.HasWorkout {
			trainingDays++
			if entry.Completed {
				completedDays++
			}
		}
	}

	weekProgress := 0
	if trainingDays > 0 {
		weekProgress = (completedDays*100 + trainingDays/2) / trainingDays
	}

	return Stats{
		TotalWorkouts:     program.TotalWorkouts,
		CompletedWorkouts: program.CompletedWorkouts,
		CurrentStreak:     s.Streak(program, now),
		WeekProgress:      weekProgress,
	}
}
