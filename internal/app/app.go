package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"playground_backend/internal/config"
	"playground_backend/internal/controller"
	"playground_backend/internal/repository"
	"playground_backend/internal/service"
	"playground_backend/pkg/database"
	"playground_backend/pkg/logger"
	"playground_backend/pkg/monitoring"
	"playground_backend/pkg/security"
	"playground_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	subject  *repository.SubjectRepository
	quiz     *repository.QuizRepository
	progress *repository.ProgressRepository
	badge    *repository.BadgeRepository
	research *repository.ResearchRepository
	formula  *repository.FormulaRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	user       *service.UserService
	stats      *service.StatsService
	badge      *service.BadgeService
	quiz       *service.QuizService
	research   *service.ResearchService
	arxiv      *service.ArxivService
	dashboard  *service.DashboardService
	calculator *service.CalculatorService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	quiz        *controller.QuizController
	achievement *controller.AchievementController
	research    *controller.ResearchController
	dashboard   *controller.DashboardController
	calculator  *controller.CalculatorController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 应用热更新后的配置并通知已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		subject:  repository.NewSubjectRepository(db),
		quiz:     repository.NewQuizRepository(db),
		progress: repository.NewProgressRepository(db),
		badge:    repository.NewBadgeRepository(db),
		research: repository.NewResearchRepository(db),
		formula:  repository.NewFormulaRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.stats = service.NewStatsService(repos.progress, repos.user, repos.research)
	s.badge = service.NewBadgeService(repos.badge, repos.user, s.stats)
	s.quiz = service.NewQuizService(repos.quiz, repos.subject, repos.progress, repos.user, s.badge, rdb)
	s.research = service.NewResearchService(repos.research)
	s.arxiv = service.NewArxivService(&cfg.Arxiv, rdb)
	s.dashboard = service.NewDashboardService(s.stats, s.badge, repos.progress)
	s.calculator = service.NewCalculatorService(repos.formula)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user),
		quiz:        controller.NewQuizController(s.quiz),
		achievement: controller.NewAchievementController(s.badge, s.stats),
		research:    controller.NewResearchController(s.research, s.arxiv),
		dashboard:   controller.NewDashboardController(s.dashboard),
		calculator:  controller.NewCalculatorController(s.calculator),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.Log.Info("Runtime config updated",
			zap.String("mode", newCfg.Server.Mode),
			zap.Strings("allowedOrigins", newCfg.CORS.AllowedOrigins))
	})

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("playground", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
