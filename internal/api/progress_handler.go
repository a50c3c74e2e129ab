package api

import (
	"net/http"
	"time"

	"exotico/fitness-tracker/internal/domain"
	"exotico/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler exposes the derived progress views over the user's
// active program. All three endpoints honor the degrade-to-empty policy:
// a failed or missing program read yields the "no program" shape, never a
// hard error.
type ProgressHandler struct {
	programService  service.ProgramService
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(programService service.ProgramService, progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		programService:  programService,
		progressService: progressService,
	}
}

// activeProgram loads the user's active program; nil means "no program"
// whether from absence or from a failed read.
func (h *ProgressHandler) activeProgram(c *gin.Context) (*domain.Program, bool) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return nil, false
	}
	program, err := h.programService.GetActive(c.Request.Context(), userID)
	if err != nil {
		program = nil
	}
	return program, true
}

// Today returns today's training status.
func (h *ProgressHandler) Today(c *gin.Context) {
	program, ok := h.activeProgram(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.progressService.TodayStatus(program, time.Now().UTC()))
}

// Week returns the rolling 7-day history ending today.
func (h *ProgressHandler) Week(c *gin.Context) {
	program, ok := h.activeProgram(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": h.progressService.WeekHistory(program, time.Now().UTC())})
}

// Stats returns totals, the current streak and this week's completion
// rate.
func (h *ProgressHandler) Stats(c *gin.Context) {
	program, ok := h.activeProgram(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.progressService.Stats(program, time.Now().UTC()))
}
