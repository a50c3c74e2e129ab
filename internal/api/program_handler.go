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

// ProgramHandler exposes the training program lifecycle.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- Request/Response Structs ---

type CreateProgramRequest struct {
	Kind       domain.ProgramKind `json:"kind" binding:"required,oneof=template custom"`
	CustomName string             `json:"customName,omitempty"`
}

// ProgramSummary is the listing shape; the full weeks array is only
// returned by the single-program endpoints.
type ProgramSummary struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Kind               string     `json:"kind"`
	Description        string     `json:"description,omitempty"`
	Difficulty         string     `json:"difficulty,omitempty"`
	Duration           string     `json:"duration,omitempty"`
	Frequency          string     `json:"frequency,omitempty"`
	CurrentWeek        int        `json:"currentWeek"`
	CurrentDay         int        `json:"currentDay"`
	TotalWeeks         int        `json:"totalWeeks"`
	TotalWorkouts      int        `json:"totalWorkouts"`
	CompletedWorkouts  int        `json:"completedWorkouts"`
	ProgressPercentage int        `json:"progressPercentage"`
	StartDate          time.Time  `json:"startDate"`
	LastWorkoutDate    *time.Time `json:"lastWorkoutDate,omitempty"`
	IsActive           bool       `json:"isActive"`
	IsPaused           bool       `json:"isPaused"`
}

// --- Handler Methods ---

// CreateProgram generates a new program for the user.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.programService.Create(c.Request.Context(), userID, req.Kind, req.CustomName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActiveProgramExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidProgramKind):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create program")
		}
		return
	}

	c.JSON(http.StatusCreated, program)
}

// ListPrograms returns the user's programs, newest first. A read failure
// degrades to an empty list rather than an error page.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	programs, err := h.programService.List(c.Request.Context(), userID)
	if err != nil {
		programs = nil
	}

	summaries := make([]ProgramSummary, 0, len(programs))
	for i := range programs {
		summaries = append(summaries, mapProgramToSummary(&programs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"programs": summaries})
}

// GetActiveProgram returns the user's active program, or null when there
// is none (including when the read fails — degrade to empty).
func (h *ProgramHandler) GetActiveProgram(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	program, err := h.programService.GetActive(c.Request.Context(), userID)
	if err != nil {
		program = nil
	}

	if program == nil {
		c.JSON(http.StatusOK, gin.H{"program": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": program})
}

// GetProgram returns one of the user's programs with the full weeks array.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	userID, programID, ok := h.pathProgram(c)
	if !ok {
		return
	}

	program, err := h.programService.GetByID(c.Request.Context(), userID, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		return
	}

	c.JSON(http.StatusOK, gin.H{"program": program})
}

// CompleteToday marks today's training day as done.
func (h *ProgramHandler) CompleteToday(c *gin.Context) {
	userID, programID, ok := h.pathProgram(c)
	if !ok {
		return
	}

	program, err := h.programService.CompleteToday(c.Request.Context(), userID, programID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotTrainingDay):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDayNotFound), errors.Is(err, service.ErrProgramNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record completion")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"program":            mapProgramToSummary(program),
		"progressPercentage": program.ProgressPercentage(),
	})
}

// PauseProgram pauses the program.
func (h *ProgramHandler) PauseProgram(c *gin.Context) {
	h.setPaused(c, true)
}

// ResumeProgram resumes a paused program.
func (h *ProgramHandler) ResumeProgram(c *gin.Context) {
	h.setPaused(c, false)
}

func (h *ProgramHandler) setPaused(c *gin.Context, paused bool) {
	userID, programID, ok := h.pathProgram(c)
	if !ok {
		return
	}

	if err := h.programService.SetPaused(c.Request.Context(), userID, programID, paused); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update program")
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": paused})
}

// pathProgram pulls the authenticated user and the :id path param.
func (h *ProgramHandler) pathProgram(c *gin.Context) (userID, programID primitive.ObjectID, ok bool) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	programID, err = primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID")
		return
	}
	return userID, programID, true
}

// mapProgramToSummary converts a domain Program to its listing DTO.
func mapProgramToSummary(p *domain.Program) ProgramSummary {
	return ProgramSummary{
		ID:                 p.ID.Hex(),
		Name:               p.Name,
		Kind:               string(p.Kind),
		Description:        p.Description,
		Difficulty:         p.Difficulty,
		Duration:           p.Duration,
		Frequency:          p.Frequency,
		CurrentWeek:        p.CurrentWeek,
		CurrentDay:         p.CurrentDay,
		TotalWeeks:         p.TotalWeeks,
		TotalWorkouts:      p.TotalWorkouts,
		CompletedWorkouts:  p.CompletedWorkouts,
		ProgressPercentage: p.ProgressPercentage(),
		StartDate:          p.StartDate,
		LastWorkoutDate:    p.LastWorkoutDate,
		IsActive:           p.IsActive,
		IsPaused:           p.IsPaused,
	}
}
