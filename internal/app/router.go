package app

import (
	"playground_backend/internal/config"
	"playground_backend/internal/middleware"
	"playground_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 内容目录允许游客浏览
		public.GET("/subjects", c.quiz.GetSubjects)
		public.GET("/quizzes", c.quiz.GetQuizzes)
		public.GET("/quizzes/:id", c.quiz.GetQuizDetail)
		public.GET("/research/articles", c.research.GetArticles)
		public.GET("/research/articles/:id", c.research.GetArticle)
		public.GET("/research/papers", c.research.SearchPapers)
		public.GET("/calculator/formulas", c.calculator.GetFormulas)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		// 测验提交
		authGroup.POST("/quizzes/:id/submit", c.quiz.SubmitQuiz)

		// 研究中心收藏
		authGroup.GET("/research/saved", c.research.GetSavedArticles)
		authGroup.POST("/research/articles/:id/save", c.research.SaveArticle)
		authGroup.DELETE("/research/articles/:id/save", c.research.UnsaveArticle)

		// 成就系统
		authGroup.GET("/achievements/badges", c.achievement.GetUserBadges)
		authGroup.GET("/achievements/catalog", c.achievement.GetBadgeCatalog)
		authGroup.GET("/achievements/stats", c.achievement.GetStats)
		authGroup.GET("/achievements/leaderboard", c.achievement.GetLeaderboard)
		authGroup.POST("/achievements/check", c.achievement.CheckBadges)

		// 看板
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
