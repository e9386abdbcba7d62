package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.Me)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		authGroup.GET("/courses", c.course.List)
		authGroup.GET("/courses/:id", c.course.Get)

		authGroup.GET("/notifications", c.notification.List)
		authGroup.GET("/notifications/unread-count", c.notification.UnreadCount)
		authGroup.PATCH("/notifications/:id/read", c.notification.MarkRead)

		authGroup.GET("/assessments", c.assessment.List)
		authGroup.GET("/assessments/:id", c.assessment.Get)

		authGroup.GET("/enrollments", c.enrollment.List)
		authGroup.GET("/submissions", c.submission.List)
		authGroup.GET("/submissions/:id", c.submission.Get)
		authGroup.GET("/sponsorships", c.sponsor.ListSponsorships)
		authGroup.GET("/sponsorships/:id", c.sponsor.GetSponsorship)

		// Instructor routes (admin passes through role checks)
		instructor := authGroup.Group("/")
		instructor.Use(middleware.RoleMiddleware(model.Instructor))
		{
			instructor.POST("/courses", c.course.Create)
			instructor.PUT("/courses/:id", c.course.Update)
			instructor.DELETE("/courses/:id", c.course.Delete)

			instructor.POST("/assessments", c.assessment.Create)
			instructor.PUT("/assessments/:id", c.assessment.Update)
			instructor.DELETE("/assessments/:id", c.assessment.Delete)
			instructor.POST("/assessments/:id/questions", c.assessment.AddQuestion)
			instructor.PUT("/assessments/questions/:id", c.assessment.UpdateQuestion)
			instructor.DELETE("/assessments/questions/:id", c.assessment.DeleteQuestion)

			instructor.PUT("/submissions/:id/grade", c.submission.Grade)
		}

		// Student routes
		student := authGroup.Group("/")
		student.Use(middleware.RoleMiddleware(model.Student))
		{
			student.POST("/enrollments", c.enrollment.Enroll)
			student.POST("/enrollments/simulate-payment", c.enrollment.SimulatePayment)
			student.PUT("/enrollments/:id/progress", c.enrollment.UpdateProgress)

			student.POST("/submissions", c.submission.Submit)
			student.POST("/submissions/:id/attachment", c.submission.AttachFile)
		}

		// Sponsor routes
		sponsor := authGroup.Group("/sponsor")
		sponsor.Use(middleware.RoleMiddleware(model.Sponsor))
		{
			sponsor.POST("/profile", c.sponsor.CreateProfile)
			sponsor.GET("/profile", c.sponsor.GetMyProfile)
			sponsor.POST("/funds/add", c.sponsor.AddFunds)
			sponsor.POST("/funds/deduct", c.sponsor.DeductFunds)
			sponsor.GET("/transactions", c.sponsor.ListTransactions)
			sponsor.GET("/dashboard", c.dashboard.SponsorDashboard)
		}
		authGroup.POST("/sponsorships", middleware.RoleMiddleware(model.Sponsor), c.sponsor.CreateSponsorship)

		// Admin routes
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/users", c.user.List)
			admin.PUT("/users/:id/verify", c.user.SetVerified)
			admin.GET("/sponsors", c.sponsor.ListProfiles)
			admin.GET("/analytics", c.dashboard.AdminAnalytics)
		}
	}
}
