package api

import (
	"net/http"

	"astgym/gym-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the routes dispatch to. AuthService nil disables authentication.
type Services struct {
	Auth      service.AuthService
	Program   service.ProgramService
	Log       service.WorkoutLogService
	Profile   service.ProfileService
	Dashboard service.DashboardService
}

func SetupRoutes(router *gin.Engine, svc Services) {
	programHandler := NewProgramHandler(svc.Program)
	logHandler := NewLogHandler(svc.Log)
	profileHandler := NewProfileHandler(svc.Profile, svc.Dashboard)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	protected := apiV1.Group("")
	if svc.Auth != nil {
		authHandler := NewAuthHandler(svc.Auth)
		apiV1.POST("/auth/token", authHandler.Token)
		protected.Use(AuthMiddleware(svc.Auth.GetJWTSecret()))
	}
	{
		// --- Program Routes ---
		protected.POST("/programs/generate", programHandler.GenerateProgram)
		protected.GET("/programs/static", programHandler.ListStaticPrograms)
		protected.POST("/programs/static/:id", programHandler.LoadStaticProgram)
		protected.GET("/program", programHandler.CurrentProgram)
		protected.DELETE("/program", programHandler.ClearProgram)

		// --- Workout Log Routes ---
		protected.POST("/logs", logHandler.LogWorkout)
		protected.GET("/logs", logHandler.History)

		// --- Profile Routes ---
		protected.POST("/profile", profileHandler.Onboard)
		protected.GET("/profile", profileHandler.Profile)
		protected.GET("/dashboard", profileHandler.Dashboard)
	}
}
