package service

import (
	"context"
	"math"
	"testing"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubFoodRepo struct {
	foods map[primitive.ObjectID]*domain.Food
}

func (r *stubFoodRepo) Create(_ context.Context, food *domain.Food) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	if r.foods == nil {
		r.foods = map[primitive.ObjectID]*domain.Food{}
	}
	r.foods[id] = food
	return id, nil
}

func (r *stubFoodRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Food, error) {
	food, ok := r.foods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return food, nil
}

func (r *stubFoodRepo) GetAll(_ context.Context) ([]domain.Food, error) {
	all := make([]domain.Food, 0, len(r.foods))
	for _, food := range r.foods {
		all = append(all, *food)
	}
	return all, nil
}

type stubNutritionLogRepo struct {
	created *domain.NutritionLog
	logs    []domain.NutritionLog

	rangeFrom, rangeTo time.Time
}

func (r *stubNutritionLogRepo) Create(_ context.Context, log *domain.NutritionLog) (primitive.ObjectID, error) {
	r.created = log
	return primitive.NewObjectID(), nil
}

func (r *stubNutritionLogRepo) GetByUser(_ context.Context, _ primitive.ObjectID, _ int64) ([]domain.NutritionLog, error) {
	return r.logs, nil
}

func (r *stubNutritionLogRepo) GetByUserAndDateRange(_ context.Context, _ primitive.ObjectID, from, to time.Time, _ int64) ([]domain.NutritionLog, error) {
	r.rangeFrom = from
	r.rangeTo = to
	return r.logs, nil
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLogMealsTotals(t *testing.T) {
	foodRepo := &stubFoodRepo{foods: map[primitive.ObjectID]*domain.Food{}}
	chickenID := primitive.NewObjectID()
	riceID := primitive.NewObjectID()
	foodRepo.foods[chickenID] = &domain.Food{
		ID: chickenID, Name: "Pechuga de pollo",
		CaloriesPer100g: 165, Protein: 31, Carbs: 0, Fat: 3.6,
	}
	foodRepo.foods[riceID] = &domain.Food{
		ID: riceID, Name: "Arroz blanco",
		CaloriesPer100g: 130, Protein: 2.7, Carbs: 28, Fat: 0.3,
	}

	logRepo := &stubNutritionLogRepo{}
	svc := NewNutritionService(foodRepo, logRepo)

	userID := primitive.NewObjectID()
	date := time.Date(2025, 6, 4, 13, 0, 0, 0, time.UTC)
	entry, err := svc.LogMeals(context.Background(), userID, date, []MealInput{
		{FoodID: chickenID, Quantity: 200, MealType: domain.MealAlmuerzo},
		{FoodID: riceID, Quantity: 150, MealType: domain.MealAlmuerzo},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 200g chicken = 330 kcal, 150g rice = 195 kcal.
	if !almostEqual(entry.TotalCalories, 525) {
		t.Errorf("totalCalories: got %v, want 525", entry.TotalCalories)
	}
	if !almostEqual(entry.TotalProtein, 62+4.05) {
		t.Errorf("totalProtein: got %v, want 66.05", entry.TotalProtein)
	}
	if !almostEqual(entry.TotalCarbs, 42) {
		t.Errorf("totalCarbs: got %v, want 42", entry.TotalCarbs)
	}
	if !almostEqual(entry.TotalFat, 7.2+0.45) {
		t.Errorf("totalFat: got %v, want 7.65", entry.TotalFat)
	}
	if len(entry.Meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(entry.Meals))
	}
	if entry.Meals[0].FoodName != "Pechuga de pollo" || !almostEqual(entry.Meals[0].Calories, 330) {
		t.Errorf("first meal: %+v", entry.Meals[0])
	}
	if logRepo.created == nil {
		t.Error("log should have been persisted")
	}
}

func TestLogMealsSkipsUnknownFoods(t *testing.T) {
	foodRepo := &stubFoodRepo{foods: map[primitive.ObjectID]*domain.Food{}}
	appleID := primitive.NewObjectID()
	foodRepo.foods[appleID] = &domain.Food{ID: appleID, Name: "Manzana", CaloriesPer100g: 52}

	svc := NewNutritionService(foodRepo, &stubNutritionLogRepo{})

	entry, err := svc.LogMeals(context.Background(), primitive.NewObjectID(), time.Time{}, []MealInput{
		{FoodID: primitive.NewObjectID(), Quantity: 100, MealType: domain.MealSnack},
		{FoodID: appleID, Quantity: 100, MealType: domain.MealSnack},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.Meals) != 1 || entry.Meals[0].FoodName != "Manzana" {
		t.Fatalf("unknown food should have been skipped: %+v", entry.Meals)
	}
}

func TestLogMealsRejections(t *testing.T) {
	svc := NewNutritionService(&stubFoodRepo{}, &stubNutritionLogRepo{})
	userID := primitive.NewObjectID()

	if _, err := svc.LogMeals(context.Background(), userID, time.Time{}, nil); err != ErrEmptyNutritionLog {
		t.Errorf("empty meals: got %v, want ErrEmptyNutritionLog", err)
	}

	_, err := svc.LogMeals(context.Background(), userID, time.Time{}, []MealInput{
		{FoodID: primitive.NewObjectID(), Quantity: 100, MealType: domain.MealType("brunch")},
	})
	if err != ErrInvalidMealType {
		t.Errorf("invalid meal type: got %v, want ErrInvalidMealType", err)
	}

	_, err = svc.LogMeals(context.Background(), userID, time.Time{}, []MealInput{
		{FoodID: primitive.NewObjectID(), Quantity: 100, MealType: domain.MealCena},
	})
	if err != ErrNoUsableMeals {
		t.Errorf("all foods unknown: got %v, want ErrNoUsableMeals", err)
	}
}

func TestCreateFoodValidation(t *testing.T) {
	svc := NewNutritionService(&stubFoodRepo{}, &stubNutritionLogRepo{})

	if _, err := svc.CreateFood(context.Background(), &domain.Food{Name: "", CaloriesPer100g: 100}); err != ErrFoodValidation {
		t.Errorf("missing name: got %v, want ErrFoodValidation", err)
	}
	if _, err := svc.CreateFood(context.Background(), &domain.Food{Name: "Agua", CaloriesPer100g: 0}); err != ErrFoodValidation {
		t.Errorf("zero calories: got %v, want ErrFoodValidation", err)
	}

	food, err := svc.CreateFood(context.Background(), &domain.Food{Name: "Avena", CaloriesPer100g: 389})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if food.ID.IsZero() {
		t.Error("created food should carry its assigned ID")
	}
}

func TestListLogsDayWindow(t *testing.T) {
	logRepo := &stubNutritionLogRepo{}
	svc := NewNutritionService(&stubFoodRepo{}, logRepo)

	day := time.Date(2025, 6, 4, 18, 30, 0, 0, time.UTC)
	if _, err := svc.ListLogs(context.Background(), primitive.NewObjectID(), day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	if !logRepo.rangeFrom.Equal(wantFrom) {
		t.Errorf("from: got %s, want %s", logRepo.rangeFrom, wantFrom)
	}
	if !logRepo.rangeTo.Equal(wantFrom.AddDate(0, 0, 1)) {
		t.Errorf("to: got %s, want %s", logRepo.rangeTo, wantFrom.AddDate(0, 0, 1))
	}
}
