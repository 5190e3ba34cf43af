package api

import (
	"errors"
	"fmt"
	"net/http"

	"astgym/gym-ai/internal/domain"
	"astgym/gym-ai/internal/generation"
	"astgym/gym-ai/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programService service.ProgramService
}

func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

// GenerateProgramRequest mirrors the generator form. A narrative longer than the
// configured threshold replaces the form fields in the prompt, but goal, level and
// daysPerWeek stay required: the form always submits its current selections, and
// they remain the fallback values when the model omits targetGoal or difficulty.
type GenerateProgramRequest struct {
	Goal        string                    `json:"goal" binding:"required"`
	Level       string                    `json:"level" binding:"required"`
	DaysPerWeek int                       `json:"daysPerWeek" binding:"required,min=1,max=7"`
	Equipment   string                    `json:"equipment"`
	Injuries    string                    `json:"injuries"`
	Stats       *domain.UserPhysicalStats `json:"stats"`
	Narrative   string                    `json:"narrative"`
}

func MapGenerateRequest(req GenerateProgramRequest) generation.Request {
	return generation.Request{
		Goal:        req.Goal,
		Level:       req.Level,
		DaysPerWeek: req.DaysPerWeek,
		Equipment:   req.Equipment,
		Injuries:    req.Injuries,
		Stats:       req.Stats,
		Narrative:   req.Narrative,
	}
}

// GenerateProgram godoc
// @Summary Generate a new AI workout program
// @Description Calls the model, enriches every exercise with video links and makes the result the active program.
// @Tags Programs
// @Accept json
// @Produce json
// @Param request body GenerateProgramRequest true "Generator form"
// @Success 201 {object} domain.WorkoutProgram
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 502 {object} gin.H "Model failed to produce a usable program"
// @Router /programs/generate [post]
func (h *ProgramHandler) GenerateProgram(c *gin.Context) {
	var req GenerateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.programService.GenerateProgram(c.Request.Context(), MapGenerateRequest(req))
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, generation.ErrGeneration) {
			abortWithError(c, http.StatusBadGateway, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during generation")
		}
		return
	}
	c.JSON(http.StatusCreated, program)
}

// ListStaticPrograms godoc
// @Summary List the pre-authored programs
// @Tags Programs
// @Produce json
// @Success 200 {array} catalog.Summary
// @Router /programs/static [get]
func (h *ProgramHandler) ListStaticPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, h.programService.StaticPrograms())
}

// LoadStaticProgram godoc
// @Summary Make a pre-authored program the active program
// @Tags Programs
// @Produce json
// @Param id path string true "Static program ID"
// @Success 200 {object} domain.WorkoutProgram
// @Failure 404 {object} gin.H "Unknown program"
// @Router /programs/static/{id} [post]
func (h *ProgramHandler) LoadStaticProgram(c *gin.Context) {
	program, err := h.programService.LoadStaticProgram(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStaticProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		}
		return
	}
	c.JSON(http.StatusOK, program)
}

// CurrentProgram godoc
// @Summary Get the active program
// @Tags Programs
// @Produce json
// @Success 200 {object} domain.WorkoutProgram
// @Failure 404 {object} gin.H "No active program"
// @Router /program [get]
func (h *ProgramHandler) CurrentProgram(c *gin.Context) {
	program, err := h.programService.CurrentProgram(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveProgram) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to read program")
		}
		return
	}
	c.JSON(http.StatusOK, program)
}

// ClearProgram godoc
// @Summary Drop the active program
// @Tags Programs
// @Success 204
// @Router /program [delete]
func (h *ProgramHandler) ClearProgram(c *gin.Context) {
	if err := h.programService.ClearProgram(c.Request.Context()); err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to clear program")
		return
	}
	c.Status(http.StatusNoContent)
}
