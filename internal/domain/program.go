package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramKind distinguishes the generated template routine from a
// user-assembled one.
type ProgramKind string

const (
	KindTemplate ProgramKind = "template"
	KindCustom   ProgramKind = "custom"
)

// TrainingDaysPerWeek is the number of Day entries per week. Saturday and
// Sunday are rest days and are never modeled as Day entities.
const TrainingDaysPerWeek = 5

// CardioSlot is the daily free-form cardio block attached to every
// training day.
type CardioSlot struct {
	Type      string `bson:"type" json:"type"`
	Duration  string `bson:"duration" json:"duration"`
	Completed bool   `bson:"completed" json:"completed"`
}

// PlannedExercise is one exercise slot inside a Day. Reps is a string so
// "al fallo" (to failure) can be planned alongside plain numbers.
type PlannedExercise struct {
	ExerciseName string `bson:"exerciseName" json:"exerciseName"`
	MuscleGroup  string `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
	Sets         int    `bson:"sets" json:"sets"`
	Reps         string `bson:"reps" json:"reps"`
	RestTime     int    `bson:"restTime" json:"restTime"` // seconds
	Completed    bool   `bson:"completed" json:"completed"`
}

// Day is a single training day. DayNumber runs Monday=1 .. Friday=5.
type Day struct {
	DayNumber    int               `bson:"dayNumber" json:"dayNumber"`
	DayName      string            `bson:"dayName" json:"dayName"`
	MuscleGroups []string          `bson:"muscleGroups" json:"muscleGroups"`
	Exercises    []PlannedExercise `bson:"exercises" json:"exercises"`
	Cardio       CardioSlot        `bson:"cardio" json:"cardio"`
	Completed    bool              `bson:"completed" json:"completed"`
	CompletedAt  *time.Time        `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// Week groups the five training days of one week of the cycle.
type Week struct {
	WeekNumber int   `bson:"weekNumber" json:"weekNumber"`
	Days       []Day `bson:"days" json:"days"`
	Completed  bool  `bson:"completed" json:"completed"`
}

// Program is a user's multi-week training plan instance. The weeks form a
// fixed-length cycle repeated indefinitely from StartDate; all "which day
// is today" math is derived from StartDate and the wall clock, never from
// the CurrentWeek/CurrentDay display cursors.
type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name        string             `bson:"name" json:"name"`
	Kind        ProgramKind        `bson:"kind" json:"kind"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Difficulty  string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Duration    string             `bson:"duration,omitempty" json:"duration,omitempty"`   // e.g. "45-60 min"
	Frequency   string             `bson:"frequency,omitempty" json:"frequency,omitempty"` // e.g. "5 días/semana"

	CurrentWeek int `bson:"currentWeek" json:"currentWeek"`
	CurrentDay  int `bson:"currentDay" json:"currentDay"`
	TotalWeeks  int `bson:"totalWeeks" json:"totalWeeks"`

	Weeks []Week `bson:"weeks" json:"weeks"`

	TotalWorkouts     int        `bson:"totalWorkouts" json:"totalWorkouts"`
	CompletedWorkouts int        `bson:"completedWorkouts" json:"completedWorkouts"`
	StartDate         time.Time  `bson:"startDate" json:"startDate"` // immutable after creation
	LastWorkoutDate   *time.Time `bson:"lastWorkoutDate,omitempty" json:"lastWorkoutDate,omitempty"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	IsPaused  bool      `bson:"isPaused" json:"isPaused"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ISOWeekday maps a date to Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// IsTrainingWeekday reports whether the date falls Monday through Friday.
func IsTrainingWeekday(t time.Time) bool {
	return ISOWeekday(t) <= TrainingDaysPerWeek
}

// ElapsedDays returns the number of whole calendar days between the
// program's start date and the given date, both viewed in the start
// date's location. The midnights are re-anchored in UTC before
// subtracting so the difference is always an exact multiple of 24h;
// truncating in each timestamp's own location would undercount by a day
// across a DST transition or a location mismatch. Negative before the
// start.
func (p *Program) ElapsedDays(date time.Time) int {
	sy, sm, sd := p.StartDate.Date()
	dy, dm, dd := date.In(p.StartDate.Location()).Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	end := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}

// WeekInCycle resolves which week of the repeating cycle the given date
// falls in (1..TotalWeeks). Valid only for dates on or after StartDate.
func (p *Program) WeekInCycle(date time.Time) int {
	weeksSinceStart := p.ElapsedDays(date) / 7
	return (weeksSinceStart % p.TotalWeeks) + 1
}

// ResolveTrainingDay maps a date onto the program's cycle and returns the
// matching Day. It returns false on weekends, on dates before the program
// started, and when the cycle week or day is missing from the document
// (malformed data is treated as "no training day", not an error).
//
// Every piece of progress derivation and completion in the app goes
// through this single resolver so the week math cannot drift.
func (p *Program) ResolveTrainingDay(date time.Time) (*Day, bool) {
	date = date.In(p.StartDate.Location())
	weekday := ISOWeekday(date)
	if weekday > TrainingDaysPerWeek {
		return nil, false
	}
	if p.TotalWeeks <= 0 || p.ElapsedDays(date) < 0 {
		return nil, false
	}
	weekNumber := p.WeekInCycle(date)
	for wi := range p.Weeks {
		if p.Weeks[wi].WeekNumber != weekNumber {
			continue
		}
		for di := range p.Weeks[wi].Days {
			if p.Weeks[wi].Days[di].DayNumber == weekday {
				return &p.Weeks[wi].Days[di], true
			}
		}
		return nil, false
	}
	return nil, false
}

// RecomputeCounters rescans every day and rebuilds TotalWorkouts,
// CompletedWorkouts and the per-week completed flags. Called after every
// completion change; counters are never incremented in place.
func (p *Program) RecomputeCounters() {
	total := 0
	completed := 0
	for wi := range p.Weeks {
		week := &p.Weeks[wi]
		weekDone := len(week.Days) > 0
		for di := range week.Days {
			total++
			if week.Days[di].Completed {
				completed++
			} else {
				weekDone = false
			}
		}
		week.Completed = weekDone
	}
	p.TotalWorkouts = total
	p.CompletedWorkouts = completed
}

// ProgressPercentage returns the completed share of all planned workouts,
// rounded to the nearest integer percent.
func (p *Program) ProgressPercentage() int {
	if p.TotalWorkouts == 0 {
		return 0
	}
	return (p.CompletedWorkouts*100 + p.TotalWorkouts/2) / p.TotalWorkouts
}
