package api

import (
	"net/http"
	"strings"

	"flexzone/fitness-platform/internal/catalog"
	"flexzone/fitness-platform/internal/domain"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the static exercise catalog.
type ExerciseHandler struct {
	catalog *catalog.Catalog
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(cat *catalog.Catalog) *ExerciseHandler {
	return &ExerciseHandler{catalog: cat}
}

// ListExercises godoc
// @Summary Browse the exercise catalog
// @Description Lists exercises, optionally filtered by muscle group and/or a search term.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param muscleGroup query string false "Muscle group filter"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} domain.Exercise
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	group := c.Query("muscleGroup")
	term := c.Query("search")

	var exercises []domain.Exercise
	switch {
	case term != "" && group != "":
		for _, ex := range h.catalog.Search(term) {
			if strings.EqualFold(ex.MuscleGroup, group) {
				exercises = append(exercises, ex)
			}
		}
	case term != "":
		exercises = h.catalog.Search(term)
	case group != "":
		exercises = h.catalog.ListByMuscleGroup(group)
	default:
		exercises = h.catalog.All()
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	c.JSON(http.StatusOK, exercises)
}

// ListMuscleGroups godoc
// @Summary List muscle groups
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /exercises/muscle-groups [get]
func (h *ExerciseHandler) ListMuscleGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.MuscleGroups())
}

// GetExercise godoc
// @Summary Get one catalog exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, ok := h.catalog.GetByID(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Exercise not found.")
		return
	}
	c.JSON(http.StatusOK, ex)
}
