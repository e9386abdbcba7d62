package app

import (
	"context"
	"lms_backend/internal/config"
	"lms_backend/internal/controller"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/security"
	"lms_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	stop     chan struct{}
}

type repositories struct {
	user         *repository.UserRepository
	course       *repository.CourseRepository
	enrollment   *repository.EnrollmentRepository
	assessment   *repository.AssessmentRepository
	submission   *repository.SubmissionRepository
	sponsor      *repository.SponsorRepository
	payment      *repository.PaymentRepository
	notification *repository.NotificationRepository
}

type services struct {
	ai           *service.AIService
	storage      *service.StorageService
	email        service.EmailService
	auth         *service.AuthService
	user         *service.UserService
	course       *service.CourseService
	enrollment   *service.EnrollmentService
	assessment   *service.AssessmentService
	submission   *service.SubmissionService
	sponsor      *service.SponsorService
	notification *service.NotificationService
	dashboard    *service.DashboardService
	reminder     *service.ReminderService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	course       *controller.CourseController
	enrollment   *controller.EnrollmentController
	assessment   *controller.AssessmentController
	submission   *controller.SubmissionController
	sponsor      *controller.SponsorController
	notification *controller.NotificationController
	dashboard    *controller.DashboardController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		course:       repository.NewCourseRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		submission:   repository.NewSubmissionRepository(db),
		sponsor:      repository.NewSponsorRepository(db),
		payment:      repository.NewPaymentRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.email = service.NewEmailService(cfg.Mail)
	s.notification = service.NewNotificationService(repos.notification)

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.course = service.NewCourseService(repos.course, s.ai)
	s.enrollment = service.NewEnrollmentService(
		repos.enrollment,
		repos.course,
		repos.sponsor,
		repos.payment,
		repos.user,
		s.notification,
	)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.course, repos.enrollment)
	s.submission = service.NewSubmissionService(
		repos.submission,
		repos.assessment,
		repos.enrollment,
		s.storage,
		s.notification,
	)
	s.sponsor = service.NewSponsorService(repos.sponsor, repos.user, repos.course, s.notification)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.enrollment, repos.sponsor, rdb)
	s.reminder = service.NewReminderService(repos.assessment, repos.enrollment, s.email)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		course:       controller.NewCourseController(s.course),
		enrollment:   controller.NewEnrollmentController(s.enrollment),
		assessment:   controller.NewAssessmentController(s.assessment),
		submission:   controller.NewSubmissionController(s.submission),
		sponsor:      controller.NewSponsorController(s.sponsor),
		notification: controller.NewNotificationController(s.notification),
		dashboard:    controller.NewDashboardController(s.dashboard),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	if !a.Config.Reminder.Enabled {
		return
	}
	interval := time.Duration(a.Config.Reminder.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	go s.reminder.Run(interval, a.stop)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		stop:   make(chan struct{}),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lms-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

// ReloadConfig swaps in a freshly loaded configuration. Settings baked into
// middleware at startup still require a restart.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	logger.Log.Info("Configuration reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
