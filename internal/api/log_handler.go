package api

import (
	"errors"
	"fmt"
	"net/http"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/service"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService service.WorkoutLogService
}

func NewLogHandler(logService service.WorkoutLogService) *LogHandler {
	return &LogHandler{logService: logService}
}

type LogWorkoutRequest struct {
	DayIndex  int                        `json:"dayIndex" binding:"min=0"`
	Exercises []domain.CompletedExercise `json:"exercises"`
}

// LogWorkout godoc
// @Summary Record a finished session of the active program
// @Tags Logs
// @Accept json
// @Produce json
// @Param request body LogWorkoutRequest true "Session data"
// @Success 201 {object} domain.WorkoutLogEntry
// @Failure 400 {object} gin.H "Invalid day or nothing to log"
// @Failure 409 {object} gin.H "No active program"
// @Router /logs [post]
func (h *LogHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.logService.LogWorkout(c.Request.Context(), service.LogWorkoutInput{
		DayIndex:  req.DayIndex,
		Exercises: req.Exercises,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveProgram):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrNothingLogged):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// History godoc
// @Summary List logged sessions, newest first
// @Tags Logs
// @Produce json
// @Success 200 {array} domain.WorkoutLogEntry
// @Router /logs [get]
func (h *LogHandler) History(c *gin.Context) {
	logs, err := h.logService.History(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to read history")
		return
	}
	c.JSON(http.StatusOK, logs)
}
