package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound     = errors.New("program not found")
	ErrActiveProgramExists = errors.New("an active program already exists; complete or pause it first")
	ErrInvalidProgramKind  = errors.New("invalid program kind")
	ErrNotTrainingDay      = errors.New("today is not a training day")
	ErrDayNotFound         = errors.New("training day not found in program")
)

// ProgramService owns the program lifecycle: generation, lookup, pausing
// and day completion.
type ProgramService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, kind domain.ProgramKind, customName string) (*domain.Program, error)
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	GetByID(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error)
	// GetActive returns (nil, nil) when the user has no active program;
	// absence is a valid state, not an error.
	GetActive(ctx context.Context, ownerID primitive.ObjectID) (*domain.Program, error)
	CompleteToday(ctx context.Context, ownerID, programID primitive.ObjectID, now time.Time) (*domain.Program, error)
	SetPaused(ctx context.Context, ownerID, programID primitive.ObjectID, paused bool) error
}

// programService implements the ProgramService interface.
type programService struct {
	programRepo repository.ProgramRepository
	userRepo    repository.UserRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository, userRepo repository.UserRepository) ProgramService {
	return &programService{
		programRepo: programRepo,
		userRepo:    userRepo,
	}
}

// Create generates a new program for the user. Only one active program is
// allowed at a time.
func (s *programService) Create(ctx context.Context, ownerID primitive.ObjectID, kind domain.ProgramKind, customName string) (*domain.Program, error) {
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required")
	}

	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	existing, err := s.programRepo.GetActiveByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrActiveProgramExists
	}

	ownerName := user.Name
	if ownerName == "" {
		ownerName = strings.SplitN(user.Email, "@", 2)[0]
	}

	var program *domain.Program
	now := time.Now().UTC()
	switch kind {
	case domain.KindTemplate:
		program = GenerateTemplateProgram(ownerID, ownerName, now)
	case domain.KindCustom:
		program = newCustomProgram(ownerID, ownerName, customName, now)
	default:
		return nil, ErrInvalidProgramKind
	}

	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	program.ID = programID
	return program, nil
}

// List returns all of the user's programs, newest first.
func (s *programService) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error) {
	return s.programRepo.GetByOwner(ctx, ownerID)
}

// GetByID returns a program the user owns.
func (s *programService) GetByID(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByIDAndOwner(ctx, programID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// GetActive returns the user's active program, or nil when there is none.
func (s *programService) GetActive(ctx context.Context, ownerID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return program, nil
}

// CompleteToday marks today's training day completed and re-persists the
// program. The day is resolved from the wall clock through the shared
// resolver, never from the stored cursor fields. Weekends and dates before
// the program start are rejected as non-training days; a structural miss
// in the weeks array is surfaced as a not-found, since it indicates caller
// error or a corrupted document.
//
// Calling this twice on the same day is safe: the counters are rebuilt by
// a full rescan, so the second call only refreshes completedAt.
func (s *programService) CompleteToday(ctx context.Context, ownerID, programID primitive.ObjectID, now time.Time) (*domain.Program, error) {
	program, err := s.programRepo.GetByIDAndOwner(ctx, programID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if !domain.IsTrainingWeekday(now) || program.ElapsedDays(now) < 0 {
		return nil, ErrNotTrainingDay
	}

	day, ok := program.ResolveTrainingDay(now)
	if !ok {
		return nil, ErrDayNotFound
	}

	completedAt := now
	day.Completed = true
	day.CompletedAt = &completedAt
	program.LastWorkoutDate = &completedAt
	program.CurrentWeek = program.WeekInCycle(now)
	program.CurrentDay = day.DayNumber
	program.RecomputeCounters()

	if err := s.programRepo.Update(ctx, program); err != nil {
		// A dropped completion would corrupt visible progress, so write
		// failures are surfaced, never swallowed.
		return nil, err
	}
	return program, nil
}

// SetPaused pauses or resumes a program.
func (s *programService) SetPaused(ctx context.Context, ownerID, programID primitive.ObjectID, paused bool) error {
	err := s.programRepo.SetPaused(ctx, programID, ownerID, paused)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProgramNotFound
	}
	return err
}

// parseObjectID converts a hex string into an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
