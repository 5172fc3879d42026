package api

import (
	"errors"
	"net/http"
	"time"

	"flexzone/fitness-platform/internal/domain"
	"flexzone/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for API ---

// PlanExerciseRequest mirrors one scheduled exercise on the wire.
type PlanExerciseRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	MuscleGroup  string `json:"muscleGroup"`
	GifURL       string `json:"gif_url"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

type DayRequest struct {
	Name      string                `json:"name"`
	Exercises []PlanExerciseRequest `json:"exercises"`
}

// PlanRequest is the shared body of create and update calls.
type PlanRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Days        []DayRequest `json:"days"`
}

// PlanResponse is the DTO for returning a stored plan.
type PlanResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Days        []domain.Day `json:"days"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// MapPlanToResponse converts a domain.Plan to PlanResponse DTO.
func MapPlanToResponse(plan *domain.Plan) PlanResponse {
	if plan == nil {
		return PlanResponse{}
	}
	return PlanResponse{
		ID:          plan.ID.Hex(),
		Name:        plan.Name,
		Description: plan.Description,
		Days:        plan.Days,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

// MapPlansToResponse converts a slice of domain.Plan to PlanResponse DTOs.
func MapPlansToResponse(plans []domain.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = MapPlanToResponse(&p)
	}
	return responses
}

func (r PlanRequest) toDays() []domain.Day {
	days := make([]domain.Day, len(r.Days))
	for i, d := range r.Days {
		exs := make([]domain.PlanExercise, len(d.Exercises))
		for j, e := range d.Exercises {
			exs[j] = domain.PlanExercise{
				ExerciseID:   e.ID,
				Name:         e.Name,
				MuscleGroup:  e.MuscleGroup,
				GifURL:       e.GifURL,
				Description1: e.Description1,
				Description2: e.Description2,
				Sets:         e.Sets,
				Reps:         e.Reps,
			}
		}
		days[i] = domain.Day{Name: d.Name, Exercises: exs}
	}
	return days
}

// --- Handler Methods ---

// CreatePlan godoc
// @Summary Create a workout plan
// @Description Validates and stores a new workout plan for the authenticated member.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body PlanRequest true "Plan details"
// @Success 201 {object} PlanResponse "Plan created successfully"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 422 {object} gin.H "Validation failure with violations array"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workout-plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), ownerID, req.Name, req.Description, req.toDays())
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// GetPlans godoc
// @Summary List the member's workout plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PlanResponse "List of plans"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /workout-plans [get]
func (h *PlanHandler) GetPlans(c *gin.Context) {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plans.")
		return
	}
	if plans == nil {
		c.JSON(http.StatusOK, []PlanResponse{})
		return
	}
	c.JSON(http.StatusOK, MapPlansToResponse(plans))
}

// GetPlan godoc
// @Summary Get one workout plan
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} PlanResponse
// @Failure 404 {object} gin.H "Not found"
// @Router /workout-plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	plan, err := h.planService.GetPlan(c.Request.Context(), ownerID, planID)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// UpdatePlan godoc
// @Summary Update a workout plan
// @Description Replaces name, description and days of an existing plan.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param plan body PlanRequest true "Plan details"
// @Success 200 {object} PlanResponse
// @Failure 404 {object} gin.H "Not found"
// @Failure 422 {object} gin.H "Validation failure with violations array"
// @Router /workout-plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), ownerID, planID, req.Name, req.Description, req.toDays())
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// DeletePlan godoc
// @Summary Delete a workout plan
// @Tags Plans
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Not found"
// @Router /workout-plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	ownerID, ok := ownerIDFromContext(c)
	if !ok {
		return
	}
	planID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid plan ID format.")
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), ownerID, planID); err != nil {
		respondPlanError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondPlanError maps plan service errors to HTTP responses. Validation
// failures return every collected violation so the UI can show them all.
func respondPlanError(c *gin.Context, err error) {
	var validationErr *service.PlanValidationError
	switch {
	case errors.As(err, &validationErr):
		violations := make([]gin.H, len(validationErr.Violations))
		for i, v := range validationErr.Violations {
			violations[i] = gin.H{
				"code":     v.Code,
				"dayIndex": v.DayIndex,
				"message":  v.Message(),
			}
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "plan validation failed",
			"violations": violations,
		})
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process workout plan.")
	}
}

// ownerIDFromContext extracts and parses the authenticated member ID.
func ownerIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify member from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid member ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}
