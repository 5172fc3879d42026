package api

import (
	"errors"
	"net/http"

	"flexzone/fitness-platform/internal/nutrition"
	"flexzone/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

// DietHandler holds the diet service dependency.
type DietHandler struct {
	dietService service.DietService
}

// NewDietHandler creates a new DietHandler.
func NewDietHandler(dietService service.DietService) *DietHandler {
	return &DietHandler{dietService: dietService}
}

// --- DTOs for API ---

// BodyProfileRequest is the calculator input as submitted by the form.
type BodyProfileRequest struct {
	WeightKg       float64 `json:"weightKg" binding:"required"`
	HeightCm       float64 `json:"heightCm" binding:"required"`
	Age            int     `json:"age" binding:"required"`
	Gender         string  `json:"gender" binding:"required"`
	ActivityLevel  string  `json:"activityLevel" binding:"required"`
	Goal           string  `json:"goal" binding:"required"`
	DietPreference string  `json:"dietPreference"`
}

func (r BodyProfileRequest) toProfile() nutrition.BodyProfile {
	pref := nutrition.DietPreference(r.DietPreference)
	if pref == "" {
		pref = nutrition.DietNonVegetarian
	}
	return nutrition.BodyProfile{
		WeightKg:       r.WeightKg,
		HeightCm:       r.HeightCm,
		Age:            r.Age,
		Gender:         nutrition.Gender(r.Gender),
		ActivityLevel:  nutrition.ActivityLevel(r.ActivityLevel),
		Goal:           nutrition.Goal(r.Goal),
		DietPreference: pref,
	}
}

type DietPlanResponse struct {
	Targets  nutrition.MacroTargets `json:"targets"`
	DietPlan string                 `json:"dietPlan"`
}

// --- Handler Methods ---

// CalculateMacros godoc
// @Summary Calculate daily macro targets
// @Description Pure calculation from body metrics; no AI call involved.
// @Tags Diet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body BodyProfileRequest true "Body profile"
// @Success 200 {object} nutrition.MacroTargets
// @Failure 400 {object} gin.H "Invalid body profile"
// @Router /diet/macros [post]
func (h *DietHandler) CalculateMacros(c *gin.Context) {
	var req BodyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	targets, err := h.dietService.CalculateTargets(req.toProfile())
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidBodyProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to calculate macro targets.")
		}
		return
	}
	c.JSON(http.StatusOK, targets)
}

// GenerateDietPlan godoc
// @Summary Generate an AI diet plan
// @Description Calculates macro targets and generates a matching diet text.
// @Tags Diet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body BodyProfileRequest true "Body profile"
// @Success 200 {object} DietPlanResponse
// @Failure 400 {object} gin.H "Invalid body profile"
// @Failure 502 {object} gin.H "AI service failure"
// @Router /diet/generate [post]
func (h *DietHandler) GenerateDietPlan(c *gin.Context) {
	var req BodyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.dietService.GenerateDietPlan(c.Request.Context(), req.toProfile())
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidBodyProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrDietGeneration) {
			abortWithError(c, http.StatusBadGateway, "Diet plan generation is temporarily unavailable.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate diet plan.")
		}
		return
	}

	c.JSON(http.StatusOK, DietPlanResponse{
		Targets:  result.Targets,
		DietPlan: result.DietPlan,
	})
}
