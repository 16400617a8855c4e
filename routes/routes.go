package routes

import (
	"time"

	"github.com/Sahithi-Sritha/FSAD-Project/controllers"
	"github.com/Sahithi-Sritha/FSAD-Project/middlewares"
	"github.com/Sahithi-Sritha/FSAD-Project/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	hub := services.NewRealtimeHub()
	entryCtl := controllers.NewEntryController(hub)
	goalCtl := controllers.NewGoalController(hub)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.PUT("/user/password", controllers.ChangePassword)
		api.DELETE("/user", controllers.DeleteAccount)

		api.GET("/foods", controllers.ListFoods)
		api.GET("/foods/:id", controllers.GetFood)
		api.POST("/foods", controllers.CreateCustomFood)

		api.POST("/entries", entryCtl.LogEntry)
		api.GET("/entries", entryCtl.ListEntries)
		api.DELETE("/entries/:id", entryCtl.DeleteEntry)

		api.GET("/goals", goalCtl.GetGoals)
		api.PUT("/goals", goalCtl.UpsertGoals)
		api.GET("/goals/suggest", goalCtl.SuggestGoals)

		api.GET("/analysis/today", controllers.AnalyzeToday)
		api.GET("/analysis/week", controllers.AnalyzeWeek)

		api.GET("/charts/daily", controllers.DailyChart)
		api.GET("/charts/meals", controllers.MealBreakdownChart)

		api.POST("/ai/chat", controllers.Chat)
		api.GET("/ai/history", controllers.ChatHistory)

		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
