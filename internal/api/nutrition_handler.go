package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NutritionHandler exposes the food catalog and nutrition logging.
type NutritionHandler struct {
	nutritionService service.NutritionService
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// --- Request Structs ---

type CreateFoodRequest struct {
	Name            string  `json:"name" binding:"required"`
	CaloriesPer100g float64 `json:"caloriesPer100g" binding:"required,gt=0"`
	Protein         float64 `json:"protein,omitempty"`
	Carbs           float64 `json:"carbs,omitempty"`
	Fat             float64 `json:"fat,omitempty"`
	Fiber           float64 `json:"fiber,omitempty"`
}

type MealRequest struct {
	FoodID   string          `json:"foodId" binding:"required"`
	Quantity float64         `json:"quantity" binding:"required,gt=0"`
	MealType domain.MealType `json:"mealType" binding:"required,oneof=desayuno almuerzo merienda cena snack"`
}

type LogMealsRequest struct {
	Date  string        `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Meals []MealRequest `json:"meals" binding:"required,min=1,dive"`
}

// --- Handler Methods ---

// ListFoods returns the food catalog; read failures degrade to empty.
func (h *NutritionHandler) ListFoods(c *gin.Context) {
	foods, err := h.nutritionService.ListFoods(c.Request.Context())
	if err != nil {
		foods = []domain.Food{}
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

// CreateFood adds a food to the catalog.
func (h *NutritionHandler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	food, err := h.nutritionService.CreateFood(c.Request.Context(), &domain.Food{
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fat:             req.Fat,
		Fiber:           req.Fiber,
	})
	if err != nil {
		if errors.Is(err, service.ErrFoodValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to create food")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"food": food})
}

// ListLogs returns the user's nutrition logs, optionally for one day
// (?date=YYYY-MM-DD). Read failures degrade to empty.
func (h *NutritionHandler) ListLogs(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var day time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	logs, err := h.nutritionService.ListLogs(c.Request.Context(), userID, day)
	if err != nil {
		logs = []domain.NutritionLog{}
	}
	c.JSON(http.StatusOK, gin.H{"nutritionLogs": logs})
}

// LogMeals records a day's meals with server-computed totals.
func (h *NutritionHandler) LogMeals(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
	}

	meals := make([]service.MealInput, 0, len(req.Meals))
	for _, m := range req.Meals {
		foodID, err := primitive.ObjectIDFromHex(m.FoodID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid food ID: %s", m.FoodID))
			return
		}
		meals = append(meals, service.MealInput{
			FoodID:   foodID,
			Quantity: m.Quantity,
			MealType: m.MealType,
		})
	}

	entry, err := h.nutritionService.LogMeals(c.Request.Context(), userID, date, meals)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyNutritionLog),
			errors.Is(err, service.ErrInvalidMealType),
			errors.Is(err, service.ErrNoUsableMeals):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record nutrition log")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"nutritionLog": entry})
}
