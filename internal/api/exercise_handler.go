package api

import (
	"errors"
	"fmt"
	"net/http"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseHandler exposes the exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- Request Structs ---

type CreateExerciseRequest struct {
	Name              string   `json:"name" binding:"required"`
	MuscleGroup       string   `json:"muscleGroup" binding:"required"`
	Description       string   `json:"description,omitempty"`
	Instructions      []string `json:"instructions,omitempty"`
	Equipment         string   `json:"equipment,omitempty"`
	Difficulty        string   `json:"difficulty,omitempty"`
	CaloriesPerMinute float64  `json:"caloriesPerMinute,omitempty"`
}

type MediaUploadRequest struct {
	Kind        service.MediaKind `json:"kind" binding:"required,oneof=video image"`
	ContentType string            `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// ListExercises returns the catalog sorted by name. A failed read degrades
// to an empty list so the catalog page always renders.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetAll(c.Request.Context())
	if err != nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// CreateExercise adds a catalog entry.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), &domain.Exercise{
		Name:              req.Name,
		MuscleGroup:       req.MuscleGroup,
		Description:       req.Description,
		Instructions:      req.Instructions,
		Equipment:         req.Equipment,
		Difficulty:        req.Difficulty,
		CaloriesPerMinute: req.CaloriesPerMinute,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseValidation), errors.Is(err, service.ErrInvalidMuscleGroup):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"exercise": exercise})
}

// RequestMediaUpload returns a presigned PUT URL for attaching a demo
// video or image to an exercise.
func (h *ExerciseHandler) RequestMediaUpload(c *gin.Context) {
	exerciseID, ok := h.pathExerciseID(c)
	if !ok {
		return
	}

	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, err := h.exerciseService.RequestMediaUpload(c.Request.Context(), exerciseID, req.Kind, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnsupportedMedia):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare media upload")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL})
}

// GetMediaURL returns a presigned GET URL for the exercise's media.
func (h *ExerciseHandler) GetMediaURL(c *gin.Context) {
	exerciseID, ok := h.pathExerciseID(c)
	if !ok {
		return
	}

	kind := service.MediaKind(c.DefaultQuery("kind", string(service.MediaVideo)))
	if kind != service.MediaVideo && kind != service.MediaImage {
		abortWithError(c, http.StatusBadRequest, "kind must be video or image")
		return
	}

	downloadURL, err := h.exerciseService.MediaDownloadURL(c.Request.Context(), exerciseID, kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrExerciseHasNoMedia):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare media download")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}

func (h *ExerciseHandler) pathExerciseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return primitive.NilObjectID, false
	}
	return id, true
}
