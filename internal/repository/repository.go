package repository

import (
	"context"
	"time"

	"exotico/fitness-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile domain.Profile) (*domain.User, error)
}

// ProgramRepository defines the interface for interacting with training
// program documents.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.Program, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	GetActiveByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.Program, error)
	Update(ctx context.Context, program *domain.Program) error
	SetPaused(ctx context.Context, id, ownerID primitive.ObjectID, paused bool) error
}

// ExerciseRepository defines the interface for interacting with the
// exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
}

// FoodRepository defines the interface for interacting with the food
// catalog.
type FoodRepository interface {
	Create(ctx context.Context, food *domain.Food) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	GetAll(ctx context.Context) ([]domain.Food, error)
}

// NutritionLogRepository defines the interface for interacting with
// nutrition log documents.
type NutritionLogRepository interface {
	Create(ctx context.Context, log *domain.NutritionLog) (primitive.ObjectID, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.NutritionLog, error)
	GetByUserAndDateRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time, limit int64) ([]domain.NutritionLog, error)
}
