package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	user       *domain.User
	getErr     error
	updated    *domain.User
	profileErr error
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	stored := *user
	stored.ID = primitive.NewObjectID()
	r.user = &stored
	return stored.ID, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.user == nil {
		return nil, repository.ErrNotFound
	}
	found := *r.user
	return &found, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*domain.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.user == nil {
		return nil, repository.ErrNotFound
	}
	found := *r.user
	return &found, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, profile domain.Profile) (*domain.User, error) {
	if r.profileErr != nil {
		return nil, r.profileErr
	}
	updated := *r.user
	updated.ID = id
	updated.Profile = profile
	r.updated = &updated
	return &updated, nil
}

type stubProgramRepo struct {
	active      *domain.Program
	activeErr   error
	byID        *domain.Program
	byIDErr     error
	created     *domain.Program
	updated     *domain.Program
	updateErr   error
	pausedState *bool
}

func (r *stubProgramRepo) Create(_ context.Context, program *domain.Program) (primitive.ObjectID, error) {
	r.created = program
	return primitive.NewObjectID(), nil
}

func (r *stubProgramRepo) GetByID(_ context.Context, _ primitive.ObjectID) (*domain.Program, error) {
	return r.byID, r.byIDErr
}

func (r *stubProgramRepo) GetByIDAndOwner(_ context.Context, _, _ primitive.ObjectID) (*domain.Program, error) {
	if r.byIDErr != nil {
		return nil, r.byIDErr
	}
	if r.byID == nil {
		return nil, repository.ErrNotFound
	}
	return r.byID, nil
}

func (r *stubProgramRepo) GetByOwner(_ context.Context, _ primitive.ObjectID) ([]domain.Program, error) {
	if r.byID == nil {
		return []domain.Program{}, nil
	}
	return []domain.Program{*r.byID}, nil
}

func (r *stubProgramRepo) GetActiveByOwner(_ context.Context, _ primitive.ObjectID) (*domain.Program, error) {
	if r.activeErr != nil {
		return nil, r.activeErr
	}
	if r.active == nil {
		return nil, repository.ErrNotFound
	}
	return r.active, nil
}

func (r *stubProgramRepo) Update(_ context.Context, program *domain.Program) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = program
	return nil
}

func (r *stubProgramRepo) SetPaused(_ context.Context, _, _ primitive.ObjectID, paused bool) error {
	r.pausedState = &paused
	return nil
}

func newTestUser() *domain.User {
	return &domain.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ana",
		Email: "ana@example.com",
	}
}

// startMonday is Monday, June 2nd 2025 at 09:00 UTC.
var startMonday = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestGenerateTemplateProgram(t *testing.T) {
	ownerID := primitive.NewObjectID()
	program := GenerateTemplateProgram(ownerID, "Ana", startMonday)

	if program.TotalWeeks != 4 {
		t.Fatalf("totalWeeks: got %d, want 4", program.TotalWeeks)
	}
	if len(program.Weeks) != 4 {
		t.Fatalf("weeks: got %d, want 4", len(program.Weeks))
	}
	if program.TotalWorkouts != 20 || program.CompletedWorkouts != 0 {
		t.Errorf("counters: got %d/%d, want 0/20", program.CompletedWorkouts, program.TotalWorkouts)
	}
	if !program.IsActive || program.IsPaused {
		t.Error("a fresh program must be active and not paused")
	}
	if program.Name != "Rutina ExoticoTramax - Ana" {
		t.Errorf("unexpected name %q", program.Name)
	}

	for wi, week := range program.Weeks {
		if week.WeekNumber != wi+1 {
			t.Errorf("week %d has weekNumber %d", wi, week.WeekNumber)
		}
		if len(week.Days) != 5 {
			t.Fatalf("week %d: got %d days, want 5", week.WeekNumber, len(week.Days))
		}
		for di, day := range week.Days {
			if day.DayNumber != di+1 {
				t.Errorf("week %d day %d has dayNumber %d", week.WeekNumber, di, day.DayNumber)
			}
			if day.Completed || day.CompletedAt != nil {
				t.Errorf("week %d day %d starts completed", week.WeekNumber, day.DayNumber)
			}
			if day.Cardio.Type != "Libre" || day.Cardio.Duration != "15-30 min" {
				t.Errorf("week %d day %d cardio slot: %+v", week.WeekNumber, day.DayNumber, day.Cardio)
			}
			for _, ex := range day.Exercises {
				if ex.RestTime != 60 {
					t.Errorf("exercise %q restTime: got %d, want 60", ex.ExerciseName, ex.RestTime)
				}
				if ex.Completed {
					t.Errorf("exercise %q starts completed", ex.ExerciseName)
				}
			}
		}
	}

	// Pattern A on odd weeks, pattern B on even weeks.
	wantMondayA := []string{"PECHO", "ESPALDA"}
	wantMondayB := []string{"BRAZOS", "HOMBROS"}
	if diff := cmp.Diff(wantMondayA, program.Weeks[0].Days[0].MuscleGroups); diff != "" {
		t.Errorf("week 1 Monday muscle groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantMondayB, program.Weeks[1].Days[0].MuscleGroups); diff != "" {
		t.Errorf("week 2 Monday muscle groups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(program.Weeks[0].Days, program.Weeks[2].Days); diff != "" {
		t.Errorf("week 3 should repeat week 1 (-week1 +week3):\n%s", diff)
	}
}

func TestCreateProgramRejectsSecondActive(t *testing.T) {
	user := newTestUser()
	programRepo := &stubProgramRepo{
		active: &domain.Program{ID: primitive.NewObjectID(), IsActive: true},
	}
	svc := NewProgramService(programRepo, &stubUserRepo{user: user})

	_, err := svc.Create(context.Background(), user.ID, domain.KindTemplate, "")
	if err != ErrActiveProgramExists {
		t.Fatalf("got %v, want ErrActiveProgramExists", err)
	}
	if programRepo.created != nil {
		t.Error("no program should have been persisted")
	}
}

func TestCreateProgramKinds(t *testing.T) {
	user := newTestUser()

	t.Run("template", func(t *testing.T) {
		repo := &stubProgramRepo{}
		svc := NewProgramService(repo, &stubUserRepo{user: user})
		program, err := svc.Create(context.Background(), user.ID, domain.KindTemplate, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if program.Kind != domain.KindTemplate || len(program.Weeks) != 4 {
			t.Errorf("unexpected program: kind=%s weeks=%d", program.Kind, len(program.Weeks))
		}
	})

	t.Run("custom", func(t *testing.T) {
		repo := &stubProgramRepo{}
		svc := NewProgramService(repo, &stubUserRepo{user: user})
		program, err := svc.Create(context.Background(), user.ID, domain.KindCustom, "Mi rutina")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if program.Name != "Mi rutina" || program.TotalWeeks != 1 {
			t.Errorf("unexpected custom program: name=%q totalWeeks=%d", program.Name, program.TotalWeeks)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := NewProgramService(&stubProgramRepo{}, &stubUserRepo{user: user})
		if _, err := svc.Create(context.Background(), user.ID, domain.ProgramKind("hiit"), ""); err != ErrInvalidProgramKind {
			t.Fatalf("got %v, want ErrInvalidProgramKind", err)
		}
	})
}

func TestCompleteToday(t *testing.T) {
	user := newTestUser()
	program := GenerateTemplateProgram(user.ID, user.Name, startMonday)
	program.ID = primitive.NewObjectID()
	repo := &stubProgramRepo{byID: program}
	svc := NewProgramService(repo, &stubUserRepo{user: user})

	// Wednesday of the second cycle week.
	now := startMonday.AddDate(0, 0, 9)
	got, err := svc.CompleteToday(context.Background(), user.ID, program.ID, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day, ok := got.ResolveTrainingDay(now)
	if !ok || !day.Completed {
		t.Fatal("resolved day should be completed")
	}
	if day.CompletedAt == nil || !day.CompletedAt.Equal(now) {
		t.Errorf("completedAt: got %v, want %v", day.CompletedAt, now)
	}
	if got.CompletedWorkouts != 1 || got.TotalWorkouts != 20 {
		t.Errorf("counters: got %d/%d, want 1/20", got.CompletedWorkouts, got.TotalWorkouts)
	}
	if got.LastWorkoutDate == nil || !got.LastWorkoutDate.Equal(now) {
		t.Error("lastWorkoutDate should be set to now")
	}
	if got.CurrentWeek != 2 || got.CurrentDay != 3 {
		t.Errorf("cursor: got week %d day %d, want week 2 day 3", got.CurrentWeek, got.CurrentDay)
	}
	if repo.updated == nil {
		t.Fatal("program should have been persisted")
	}

	// Completing the same day again must not double-count.
	later := now.Add(2 * time.Hour)
	got, err = svc.CompleteToday(context.Background(), user.ID, program.ID, later)
	if err != nil {
		t.Fatalf("unexpected error on repeat: %v", err)
	}
	if got.CompletedWorkouts != 1 {
		t.Errorf("repeat completion double-counted: got %d, want 1", got.CompletedWorkouts)
	}
	day, _ = got.ResolveTrainingDay(later)
	if !day.CompletedAt.Equal(later) {
		t.Errorf("repeat completion should refresh completedAt, got %v", day.CompletedAt)
	}
}

func TestCompleteTodayRejectsNonTrainingDays(t *testing.T) {
	user := newTestUser()
	program := GenerateTemplateProgram(user.ID, user.Name, startMonday)
	program.ID = primitive.NewObjectID()
	svc := NewProgramService(&stubProgramRepo{byID: program}, &stubUserRepo{user: user})

	saturday := startMonday.AddDate(0, 0, 5)
	if _, err := svc.CompleteToday(context.Background(), user.ID, program.ID, saturday); err != ErrNotTrainingDay {
		t.Errorf("Saturday: got %v, want ErrNotTrainingDay", err)
	}

	beforeStart := startMonday.AddDate(0, 0, -7)
	if _, err := svc.CompleteToday(context.Background(), user.ID, program.ID, beforeStart); err != ErrNotTrainingDay {
		t.Errorf("before start: got %v, want ErrNotTrainingDay", err)
	}
}

func TestCompleteTodaySurfacesWriteFailure(t *testing.T) {
	user := newTestUser()
	program := GenerateTemplateProgram(user.ID, user.Name, startMonday)
	program.ID = primitive.NewObjectID()
	repo := &stubProgramRepo{byID: program, updateErr: repository.ErrUpdateFailed}
	svc := NewProgramService(repo, &stubUserRepo{user: user})

	_, err := svc.CompleteToday(context.Background(), user.ID, program.ID, startMonday)
	if !errors.Is(err, repository.ErrUpdateFailed) {
		t.Fatalf("got %v, want ErrUpdateFailed", err)
	}
}

func TestCompleteTodayStructuralMiss(t *testing.T) {
	user := newTestUser()
	program := GenerateTemplateProgram(user.ID, user.Name, startMonday)
	program.ID = primitive.NewObjectID()
	program.Weeks = program.Weeks[:1] // weeks 2-4 missing

	svc := NewProgramService(&stubProgramRepo{byID: program}, &stubUserRepo{user: user})

	secondMonday := startMonday.AddDate(0, 0, 7)
	if _, err := svc.CompleteToday(context.Background(), user.ID, program.ID, secondMonday); err != ErrDayNotFound {
		t.Errorf("got %v, want ErrDayNotFound", err)
	}
}

func TestGetActiveAbsentIsNotAnError(t *testing.T) {
	svc := NewProgramService(&stubProgramRepo{}, &stubUserRepo{user: newTestUser()})
	program, err := svc.GetActive(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program != nil {
		t.Error("expected nil program when none is active")
	}
}
