package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"
	"exotico/fitness-tracker/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrExerciseValidation = errors.New("exercise validation failed: name and muscle group are required")
	ErrInvalidMuscleGroup = errors.New("invalid muscle group")
	ErrUnsupportedMedia   = errors.New("unsupported media content type")
	ErrExerciseHasNoMedia = errors.New("exercise has no media attached")
)

// MediaKind selects which attachment slot of an exercise is addressed.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// contentTypePrefixes maps a media kind to the MIME prefix it accepts.
var contentTypePrefixes = map[MediaKind]string{
	MediaVideo: "video/",
	MediaImage: "image/",
}

// ExerciseService manages the browsable exercise catalog and its media.
type ExerciseService interface {
	Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	// RequestMediaUpload reserves an object key for the given slot and
	// returns a presigned PUT URL the client uploads to directly.
	RequestMediaUpload(ctx context.Context, id primitive.ObjectID, kind MediaKind, contentType string) (uploadURL string, err error)
	// MediaDownloadURL returns a presigned GET URL for the stored media.
	MediaDownloadURL(ctx context.Context, id primitive.ObjectID, kind MediaKind) (string, error)
	CaloriesBurned(ctx context.Context, id primitive.ObjectID, minutes float64) (float64, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	media        storage.MediaStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, media storage.MediaStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		media:        media,
	}
}

// Create validates and stores a new catalog exercise.
func (s *exerciseService) Create(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" || exercise.MuscleGroup == "" {
		return nil, ErrExerciseValidation
	}
	if !domain.IsValidMuscleGroup(exercise.MuscleGroup) {
		return nil, ErrInvalidMuscleGroup
	}
	if exercise.CaloriesPerMinute <= 0 {
		exercise.CaloriesPerMinute = domain.DefaultCaloriesPerMinute
	}
	exercise.IsActive = true

	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	// Fetch again so the DB-populated timestamps come back too.
	return s.exerciseRepo.GetByID(ctx, id)
}

// GetByID retrieves a single exercise.
func (s *exerciseService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// GetAll retrieves the full catalog.
func (s *exerciseService) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.GetAll(ctx)
}

// RequestMediaUpload attaches a fresh object key to the exercise and hands
// back a presigned upload URL.
func (s *exerciseService) RequestMediaUpload(ctx context.Context, id primitive.ObjectID, kind MediaKind, contentType string) (string, error) {
	prefix, ok := contentTypePrefixes[kind]
	if !ok || !strings.HasPrefix(contentType, prefix) {
		return "", ErrUnsupportedMedia
	}

	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("exercises/%s/%s-%s", exercise.ID.Hex(), kind, uuid.NewString())
	uploadURL, err := s.media.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	previousKey := s.mediaKey(exercise, kind)
	switch kind {
	case MediaVideo:
		exercise.VideoKey = objectKey
	case MediaImage:
		exercise.ImageKey = objectKey
	}
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return "", err
	}

	// The old object is orphaned once the key is replaced.
	if previousKey != "" {
		_ = s.media.DeleteObject(ctx, previousKey)
	}

	return uploadURL, nil
}

// MediaDownloadURL returns a short-lived download URL for the exercise's
// stored media.
func (s *exerciseService) MediaDownloadURL(ctx context.Context, id primitive.ObjectID, kind MediaKind) (string, error) {
	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	key := s.mediaKey(exercise, kind)
	if key == "" {
		return "", ErrExerciseHasNoMedia
	}
	return s.media.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
}

// CaloriesBurned estimates the calories burned performing the exercise for
// the given duration.
func (s *exerciseService) CaloriesBurned(ctx context.Context, id primitive.ObjectID, minutes float64) (float64, error) {
	if minutes <= 0 {
		return 0, nil
	}
	exercise, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return exercise.CaloriesBurned(minutes), nil
}

func (s *exerciseService) mediaKey(exercise *domain.Exercise, kind MediaKind) string {
	if kind == MediaVideo {
		return exercise.VideoKey
	}
	return exercise.ImageKey
}
