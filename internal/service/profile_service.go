package service

import (
	"context"
	"errors"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProfileValidation is returned when a profile update falls outside the
// accepted measurement bounds.
var ErrProfileValidation = errors.New("profile validation failed")

// Measurement bounds for profile updates.
const (
	minAge    = 13
	maxAge    = 100
	minWeight = 30.0  // kg
	maxWeight = 300.0 // kg
	minHeight = 120.0 // cm
	maxHeight = 250.0 // cm
)

// ProfileService reads and updates the user's body profile. The BMI is
// recomputed on every update and never accepted from the caller.
type ProfileService interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, userID primitive.ObjectID, age int, weight, height float64) (*domain.User, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// Get retrieves the user with their profile.
func (s *profileService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Update validates measurements, recomputes the BMI and persists the new
// profile.
func (s *profileService) Update(ctx context.Context, userID primitive.ObjectID, age int, weight, height float64) (*domain.User, error) {
	if age < minAge || age > maxAge ||
		weight < minWeight || weight > maxWeight ||
		height < minHeight || height > maxHeight {
		return nil, ErrProfileValidation
	}

	profile := domain.Profile{
		Age:    age,
		Weight: weight,
		Height: height,
	}
	profile.RecalculateBMI()

	user, err := s.userRepo.UpdateProfile(ctx, userID, profile)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
