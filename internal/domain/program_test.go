package domain

import (
	"testing"
	"time"
)

// newCycleProgram builds a 4-week program with empty exercise lists, just
// enough structure for the date math.
func newCycleProgram(start time.Time) *Program {
	weeks := make([]Week, 0, 4)
	for w := 1; w <= 4; w++ {
		days := make([]Day, 0, TrainingDaysPerWeek)
		for d := 1; d <= TrainingDaysPerWeek; d++ {
			days = append(days, Day{DayNumber: d, DayName: "Día"})
		}
		weeks = append(weeks, Week{WeekNumber: w, Days: days})
	}
	return &Program{
		TotalWeeks: 4,
		Weeks:      weeks,
		StartDate:  start,
	}
}

// Monday, June 2nd 2025.
var monday = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(monday); got != 1 {
		t.Errorf("Monday: got %d, want 1", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := ISOWeekday(sunday); got != 7 {
		t.Errorf("Sunday: got %d, want 7", got)
	}
}

func TestResolveTrainingDayCycle(t *testing.T) {
	p := newCycleProgram(monday)

	tests := []struct {
		name     string
		date     time.Time
		wantWeek int
		wantDay  int
	}{
		{"start date is week 1 Monday", monday, 1, 1},
		{"same day later hour", monday.Add(14 * time.Hour), 1, 1},
		{"Friday of first week", monday.AddDate(0, 0, 4), 1, 5},
		{"next Monday is week 2", monday.AddDate(0, 0, 7), 2, 1},
		{"third Wednesday is week 3", monday.AddDate(0, 0, 16), 3, 3},
		{"day 28 wraps back to week 1", monday.AddDate(0, 0, 28), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := p.ResolveTrainingDay(tt.date)
			if !ok {
				t.Fatalf("expected a training day for %v", tt.date)
			}
			if got := p.WeekInCycle(tt.date); got != tt.wantWeek {
				t.Errorf("week: got %d, want %d", got, tt.wantWeek)
			}
			if day.DayNumber != tt.wantDay {
				t.Errorf("day: got %d, want %d", day.DayNumber, tt.wantDay)
			}
		})
	}
}

func TestResolveTrainingDayAbsent(t *testing.T) {
	p := newCycleProgram(monday)

	tests := []struct {
		name string
		date time.Time
	}{
		{"Saturday", monday.AddDate(0, 0, 5)},
		{"Sunday", monday.AddDate(0, 0, 6)},
		{"day before start", monday.AddDate(0, 0, -1)},
		{"a year before start", monday.AddDate(-1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := p.ResolveTrainingDay(tt.date); ok {
				t.Errorf("expected no training day for %v", tt.date)
			}
		})
	}
}

func TestResolveTrainingDayMalformed(t *testing.T) {
	p := newCycleProgram(monday)
	// Drop week 2 entirely; the Monday one week in must degrade to absent.
	p.Weeks = append(p.Weeks[:1], p.Weeks[2:]...)
	if _, ok := p.ResolveTrainingDay(monday.AddDate(0, 0, 7)); ok {
		t.Error("expected no training day when the cycle week is missing")
	}

	empty := &Program{TotalWeeks: 0, StartDate: monday}
	if _, ok := empty.ResolveTrainingDay(monday); ok {
		t.Error("expected no training day on a program without weeks")
	}
}

func TestElapsedDaysUsesCalendarDays(t *testing.T) {
	p := newCycleProgram(monday) // starts 09:00
	lateSameDay := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)
	if got := p.ElapsedDays(lateSameDay); got != 0 {
		t.Errorf("same calendar day: got %d, want 0", got)
	}
	earlyNextDay := time.Date(2025, 6, 3, 0, 30, 0, 0, time.UTC)
	if got := p.ElapsedDays(earlyNextDay); got != 1 {
		t.Errorf("next calendar day: got %d, want 1", got)
	}
}

func TestElapsedDaysAcrossDSTTransition(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	// Spain springs forward on 2025-03-30, so the week after this Monday
	// holds only 167 real hours.
	start := time.Date(2025, 3, 24, 9, 0, 0, 0, madrid)
	p := newCycleProgram(start)

	nextMonday := start.AddDate(0, 0, 7)
	if got := p.ElapsedDays(nextMonday); got != 7 {
		t.Errorf("elapsed days across spring forward: got %d, want 7", got)
	}
	if got := p.WeekInCycle(nextMonday); got != 2 {
		t.Errorf("week across spring forward: got %d, want 2", got)
	}
	day, ok := p.ResolveTrainingDay(nextMonday)
	if !ok || day.DayNumber != 1 {
		t.Errorf("resolve across spring forward: got %v, %v", day, ok)
	}
}

func TestElapsedDaysMixedLocations(t *testing.T) {
	p := newCycleProgram(monday) // StartDate is UTC
	plus2 := time.FixedZone("UTC+2", 2*60*60)

	// 01:30 local on the next cycle Monday is still Sunday in the start
	// date's frame.
	beforeMidnight := time.Date(2025, 6, 9, 1, 30, 0, 0, plus2)
	if got := p.ElapsedDays(beforeMidnight); got != 6 {
		t.Errorf("before UTC midnight: got %d, want 6", got)
	}

	afterMidnight := time.Date(2025, 6, 9, 3, 30, 0, 0, plus2)
	if got := p.ElapsedDays(afterMidnight); got != 7 {
		t.Errorf("after UTC midnight: got %d, want 7", got)
	}
	if got := p.WeekInCycle(afterMidnight); got != 2 {
		t.Errorf("week after UTC midnight: got %d, want 2", got)
	}
}

func TestRecomputeCounters(t *testing.T) {
	p := newCycleProgram(monday)
	p.RecomputeCounters()
	if p.TotalWorkouts != 20 || p.CompletedWorkouts != 0 {
		t.Fatalf("fresh program: got %d/%d, want 0/20", p.CompletedWorkouts, p.TotalWorkouts)
	}

	p.Weeks[0].Days[0].Completed = true
	p.Weeks[0].Days[1].Completed = true
	p.RecomputeCounters()
	if p.CompletedWorkouts != 2 {
		t.Errorf("completedWorkouts: got %d, want 2", p.CompletedWorkouts)
	}
	if p.Weeks[0].Completed {
		t.Error("week with pending days must not be completed")
	}

	for d := range p.Weeks[0].Days {
		p.Weeks[0].Days[d].Completed = true
	}
	p.RecomputeCounters()
	if !p.Weeks[0].Completed {
		t.Error("week with all days done must be completed")
	}
	if p.CompletedWorkouts > p.TotalWorkouts {
		t.Error("completedWorkouts must never exceed totalWorkouts")
	}
}

func TestProgressPercentage(t *testing.T) {
	p := &Program{TotalWorkouts: 20, CompletedWorkouts: 5}
	if got := p.ProgressPercentage(); got != 25 {
		t.Errorf("got %d, want 25", got)
	}
	zero := &Program{}
	if got := zero.ProgressPercentage(); got != 0 {
		t.Errorf("empty program: got %d, want 0", got)
	}
}
