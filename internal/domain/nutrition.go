package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType slots a meal into the day.
type MealType string

const (
	MealDesayuno MealType = "desayuno"
	MealAlmuerzo MealType = "almuerzo"
	MealMerienda MealType = "merienda"
	MealCena     MealType = "cena"
	MealSnack    MealType = "snack"
)

// IsValidMealType reports whether t is one of the known meal slots.
func IsValidMealType(t MealType) bool {
	switch t {
	case MealDesayuno, MealAlmuerzo, MealMerienda, MealCena, MealSnack:
		return true
	}
	return false
}

// Food is a catalog entry with nutrition facts per 100 grams.
type Food struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	CaloriesPer100g float64            `bson:"caloriesPer100g" json:"caloriesPer100g"`
	Protein         float64            `bson:"protein,omitempty" json:"protein,omitempty"` // g per 100g
	Carbs           float64            `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat             float64            `bson:"fat,omitempty" json:"fat,omitempty"`
	Fiber           float64            `bson:"fiber,omitempty" json:"fiber,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Meal is one food entry inside a NutritionLog. Calories is computed
// server-side from the food's facts and the quantity.
type Meal struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	FoodName string             `bson:"foodName,omitempty" json:"foodName,omitempty"`
	Quantity float64            `bson:"quantity" json:"quantity"` // grams
	MealType MealType           `bson:"mealType" json:"mealType"`
	Calories float64            `bson:"calories" json:"calories"`
}

// NutritionLog records what a user ate on a given date, with totals
// denormalized for display.
type NutritionLog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Date          time.Time          `bson:"date" json:"date"`
	Meals         []Meal             `bson:"meals" json:"meals"`
	TotalCalories float64            `bson:"totalCalories" json:"totalCalories"`
	TotalProtein  float64            `bson:"totalProtein" json:"totalProtein"`
	TotalCarbs    float64            `bson:"totalCarbs" json:"totalCarbs"`
	TotalFat      float64            `bson:"totalFat" json:"totalFat"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
