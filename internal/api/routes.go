package api

import (
	"net/http"

	"flexzone/fitness-platform/internal/catalog"
	"flexzone/fitness-platform/internal/gyms"
	"flexzone/fitness-platform/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	planService service.PlanService,
	dietService service.DietService,
	profileService service.ProfileService,
	exerciseCatalog *catalog.Catalog,
	gymFinder gyms.Finder,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService)
	dietHandler := NewDietHandler(dietService)
	profileHandler := NewProfileHandler(profileService)
	exerciseHandler := NewExerciseHandler(exerciseCatalog)
	gymHandler := NewGymHandler(gymFinder)

	authMiddleware := AuthMiddleware(authService.GetJWTSecret())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Exercise Catalog Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/muscle-groups", exerciseHandler.ListMuscleGroups)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}

		// --- Workout Plan Routes ---
		planGroup := protected.Group("/workout-plans")
		{
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.GET("", planHandler.GetPlans)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.PUT("/:id", planHandler.UpdatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
		}

		// --- Diet Routes ---
		dietGroup := protected.Group("/diet")
		{
			dietGroup.POST("/macros", dietHandler.CalculateMacros)
			dietGroup.POST("/generate", dietHandler.GenerateDietPlan)
		}

		// --- Gym Lookup ---
		protected.GET("/gyms/nearby", gymHandler.NearbyGyms)

		// --- Profile Routes ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.UpdateProfile)
			profileGroup.POST("/avatar-upload", profileHandler.RequestAvatarUpload)
			profileGroup.PUT("/avatar", profileHandler.ConfirmAvatar)
		}
	}
}
