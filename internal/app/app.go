package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnquest_backend/internal/config"
	"learnquest_backend/internal/controller"
	"learnquest_backend/internal/repository"
	"learnquest_backend/internal/service"
	"learnquest_backend/pkg/configwatcher"
	"learnquest_backend/pkg/database"
	"learnquest_backend/pkg/logger"
	"learnquest_backend/pkg/monitoring"
	"learnquest_backend/pkg/security"
	"learnquest_backend/pkg/tracing"

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
	topic    *repository.TopicRepository
	level    *repository.LevelRepository
	progress *repository.ProgressRepository
	class    *repository.ClassRepository
	minigame *repository.MinigameRepository
	activity *repository.ActivityRepository
}

type services struct {
	storage  *service.StorageService
	activity *service.ActivityService
	auth     *service.AuthService
	user     *service.UserService
	roadmap  *service.RoadmapService
	progress *service.ProgressService
	class    *service.ClassService
}

type controllers struct {
	auth    *controller.AuthController
	user    *controller.UserController
	roadmap *controller.RoadmapController
	level   *controller.LevelController
	class   *controller.ClassController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		topic:    repository.NewTopicRepository(db),
		level:    repository.NewLevelRepository(db),
		progress: repository.NewProgressRepository(db),
		class:    repository.NewClassRepository(db),
		minigame: repository.NewMinigameRepository(db),
		activity: repository.NewActivityRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.activity = service.NewActivityService(repos.activity, repos.class)
	s.auth = service.NewAuthService(repos.user, s.activity, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.roadmap = service.NewRoadmapService(repos.topic, repos.level, repos.progress, repos.minigame, rdb)
	s.progress = service.NewProgressService(repos.level, repos.progress, s.roadmap, s.activity, db)
	s.class = service.NewClassService(repos.class, repos.user, s.roadmap, s.activity)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		user:    controller.NewUserController(s.user),
		roadmap: controller.NewRoadmapController(s.roadmap),
		level:   controller.NewLevelController(s.progress),
		class:   controller.NewClassController(s.class, s.activity),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		a.Config = newCfg
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
		logger.Log.Info("Configuration reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

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
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnquest", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
