package api

import (
	"net/http"
	"strconv"

	"flexzone/fitness-platform/internal/gyms"

	"github.com/gin-gonic/gin"
)

// GymHandler holds the gym finder dependency.
type GymHandler struct {
	finder gyms.Finder
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(finder gyms.Finder) *GymHandler {
	return &GymHandler{finder: finder}
}

// NearbyGyms godoc
// @Summary Find gyms near a coordinate
// @Description Searches fitness centers around the given location. Radius is clamped to 500-5000 meters.
// @Tags Gyms
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Search radius in meters (default 1500)"
// @Success 200 {array} gyms.Gym
// @Failure 400 {object} gin.H "Invalid coordinates"
// @Failure 502 {object} gin.H "Places API failure"
// @Router /gyms/nearby [get]
func (h *GymHandler) NearbyGyms(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'lat' must be a number.")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'lng' must be a number.")
		return
	}
	radius := 1500
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Query parameter 'radius' must be an integer.")
			return
		}
	}

	results, err := h.finder.Search(c.Request.Context(), lat, lng, radius)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Gym lookup is temporarily unavailable.")
		return
	}
	if results == nil {
		results = []gyms.Gym{}
	}
	c.JSON(http.StatusOK, results)
}
