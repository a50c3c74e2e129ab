package api

import (
	"net/http"

	"exotico/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	programService service.ProgramService,
	progressService service.ProgressService,
	exerciseService service.ExerciseService,
	nutritionService service.NutritionService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	programHandler := NewProgramHandler(programService)
	progressHandler := NewProgressHandler(programService, progressService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	nutritionHandler := NewNutritionHandler(nutritionService)

	authMiddleware := AuthMiddleware(jwtSecret)

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
		protected.GET("/me", authHandler.Me)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PATCH("/profile", profileHandler.UpdateProfile)

		programGroup := protected.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/active", programHandler.GetActiveProgram)
			programGroup.GET("/:id", programHandler.GetProgram)
			programGroup.POST("/:id/complete", programHandler.CompleteToday)
			programGroup.POST("/:id/pause", programHandler.PauseProgram)
			programGroup.POST("/:id/resume", programHandler.ResumeProgram)
		}

		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("/today", progressHandler.Today)
			progressGroup.GET("/week", progressHandler.Week)
			progressGroup.GET("/stats", progressHandler.Stats)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.POST("/:id/media", exerciseHandler.RequestMediaUpload)
			exerciseGroup.GET("/:id/media", exerciseHandler.GetMediaURL)
		}

		protected.GET("/foods", nutritionHandler.ListFoods)
		protected.POST("/foods", nutritionHandler.CreateFood)
		protected.GET("/nutrition", nutritionHandler.ListLogs)
		protected.POST("/nutrition", nutritionHandler.LogMeals)
	}
}
