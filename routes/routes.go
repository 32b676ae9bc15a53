package routes

import (
	"github.com/Brayern/bibo-health-hub/controllers"
	"github.com/Brayern/bibo-health-hub/middlewares"
	"github.com/Brayern/bibo-health-hub/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())

	hub := services.NewFeedHub()
	community := controllers.NewCommunityController(hub)
	feed := controllers.NewFeedController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/assess-health-risk", controllers.AssessHealthRisk)
		api.GET("/assessments/trend", controllers.GetRiskTrend)
		api.POST("/process-payment", controllers.ProcessPayment)

		api.POST("/metrics", controllers.CreateMetric)
		api.GET("/metrics", controllers.ListMetrics)

		api.POST("/goals", controllers.CreateGoal)
		api.GET("/goals", controllers.ListGoals)

		api.POST("/nutrition", controllers.CreateNutritionEntry)
		api.GET("/nutrition", controllers.ListNutritionEntries)

		api.GET("/community/posts", community.ListPosts)
		api.POST("/community/posts", community.CreatePost)
		api.POST("/community/posts/:id/like", community.LikePost)
		api.GET("/community/posts/:id/comments", community.ListComments)
		api.POST("/community/posts/:id/comments", community.AddComment)
		api.GET("/community/feed", feed.FeedWS)

		api.GET("/reminders", controllers.ListReminders)
		api.POST("/reminders", controllers.CreateReminder)
		api.DELETE("/reminders/:id", controllers.DeactivateReminder)
	}

	return r
}
