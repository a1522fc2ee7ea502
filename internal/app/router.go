package app

import (
	"learnquest_backend/internal/config"
	"learnquest_backend/internal/middleware"
	"learnquest_backend/internal/model"
	"learnquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
	}

	authGroup := api.Group("")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	authGroup.Use(middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		authGroup.GET("/roadmap", c.roadmap.GetRoadmap)
		authGroup.GET("/minigames", c.roadmap.GetMinigames)

		authGroup.GET("/levels/:id/init", c.level.InitLevel)
		authGroup.POST("/levels/:id/answer", c.level.SubmitAnswer)
		authGroup.POST("/levels/:id/complete", c.level.CompleteLevel)

		authGroup.POST("/classes/join", c.class.JoinClass)
	}

	tutorGroup := authGroup.Group("/tutor")
	tutorGroup.Use(middleware.RoleMiddleware(model.Tutor))
	{
		tutorGroup.POST("/classes", c.class.CreateClass)
		tutorGroup.GET("/classes", c.class.ListClasses)
		tutorGroup.GET("/classes/:id/students", c.class.ClassStudents)
		tutorGroup.GET("/classes/:id/activity", c.class.ClassActivity)
	}
}
