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

type ProfileHandler struct {
	profileService   service.ProfileService
	dashboardService service.DashboardService
}

func NewProfileHandler(profileService service.ProfileService, dashboardService service.DashboardService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, dashboardService: dashboardService}
}

type OnboardRequest struct {
	Name  string                   `json:"name"`
	Stats domain.UserPhysicalStats `json:"stats"`
}

// Onboard godoc
// @Summary Analyze body measurements and save the profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body OnboardRequest true "Physical stats"
// @Success 201 {object} domain.UserProfile
// @Failure 400 {object} gin.H "Invalid stats"
// @Failure 502 {object} gin.H "Analysis failed"
// @Router /profile [post]
func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.Onboard(c.Request.Context(), req.Name, req.Stats)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStats):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, generation.ErrAnalysis):
			_ = c.Error(err)
			abortWithError(c, http.StatusBadGateway, err.Error())
		default:
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		}
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Profile godoc
// @Summary Get the onboarding profile
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} gin.H "Not onboarded yet"
// @Router /profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	profile, err := h.profileService.Profile(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			_ = c.Error(err)
			abortWithError(c, http.StatusInternalServerError, "Failed to read profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Dashboard godoc
// @Summary Landing screen summary
// @Tags Profile
// @Produce json
// @Success 200 {object} service.DashboardSummary
// @Router /dashboard [get]
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
