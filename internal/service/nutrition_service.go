package service

import (
	"context"
	"errors"
	"log"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrFoodNotFound      = errors.New("food not found")
	ErrFoodValidation    = errors.New("food validation failed: name and caloriesPer100g are required")
	ErrEmptyNutritionLog = errors.New("nutrition log requires at least one meal")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrNoUsableMeals     = errors.New("none of the submitted meals reference a known food")
)

// nutritionLogLimit caps how many logs a listing returns.
const nutritionLogLimit = 20

// MealInput is a meal as submitted by the client; calories and totals are
// always recomputed server-side from the food catalog.
type MealInput struct {
	FoodID   primitive.ObjectID
	Quantity float64 // grams
	MealType domain.MealType
}

// NutritionService manages the food catalog and per-day nutrition logs.
type NutritionService interface {
	CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	ListFoods(ctx context.Context) ([]domain.Food, error)
	LogMeals(ctx context.Context, userID primitive.ObjectID, date time.Time, meals []MealInput) (*domain.NutritionLog, error)
	// ListLogs returns the user's recent logs; when day is non-zero only
	// logs for that calendar day are returned.
	ListLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.NutritionLog, error)
}

// nutritionService implements the NutritionService interface.
type nutritionService struct {
	foodRepo repository.FoodRepository
	logRepo  repository.NutritionLogRepository
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(foodRepo repository.FoodRepository, logRepo repository.NutritionLogRepository) NutritionService {
	return &nutritionService{
		foodRepo: foodRepo,
		logRepo:  logRepo,
	}
}

// CreateFood validates and stores a catalog food.
func (s *nutritionService) CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	if food.Name == "" || food.CaloriesPer100g <= 0 {
		return nil, ErrFoodValidation
	}
	id, err := s.foodRepo.Create(ctx, food)
	if err != nil {
		return nil, err
	}
	food.ID = id
	return food, nil
}

// ListFoods retrieves the food catalog.
func (s *nutritionService) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return s.foodRepo.GetAll(ctx)
}

// LogMeals records what the user ate. Calories and macro totals are
// computed from the catalog facts scaled by quantity/100g. Meals whose
// food cannot be found are skipped, matching the forgiving behavior of
// the rest of the read path; the log is rejected only when nothing
// usable remains.
func (s *nutritionService) LogMeals(ctx context.Context, userID primitive.ObjectID, date time.Time, meals []MealInput) (*domain.NutritionLog, error) {
	if len(meals) == 0 {
		return nil, ErrEmptyNutritionLog
	}
	for _, meal := range meals {
		if !domain.IsValidMealType(meal.MealType) {
			return nil, ErrInvalidMealType
		}
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := &domain.NutritionLog{
		UserID: userID,
		Date:   date,
	}

	for _, meal := range meals {
		food, err := s.foodRepo.GetByID(ctx, meal.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("WARN: Skipping meal with unknown food %s", meal.FoodID.Hex())
				continue
			}
			return nil, err
		}

		multiplier := meal.Quantity / 100
		calories := food.CaloriesPer100g * multiplier

		entry.Meals = append(entry.Meals, domain.Meal{
			FoodID:   food.ID,
			FoodName: food.Name,
			Quantity: meal.Quantity,
			MealType: meal.MealType,
			Calories: calories,
		})
		entry.TotalCalories += calories
		entry.TotalProtein += food.Protein * multiplier
		entry.TotalCarbs += food.Carbs * multiplier
		entry.TotalFat += food.Fat * multiplier
	}

	if len(entry.Meals) == 0 {
		return nil, ErrNoUsableMeals
	}

	id, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

// ListLogs retrieves the user's recent nutrition logs, optionally filtered
// to a single calendar day.
func (s *nutritionService) ListLogs(ctx context.Context, userID primitive.ObjectID, day time.Time) ([]domain.NutritionLog, error) {
	if day.IsZero() {
		return s.logRepo.GetByUser(ctx, userID, nutritionLogLimit)
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)
	return s.logRepo.GetByUserAndDateRange(ctx, userID, from, to, nutritionLogLimit)
}
