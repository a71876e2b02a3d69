package app

import (
	"competency_backend/internal/config"
	"competency_backend/internal/controller"
	"competency_backend/internal/repository"
	"competency_backend/internal/service"
	"competency_backend/pkg/database"
	"competency_backend/pkg/logger"
	"competency_backend/pkg/monitoring"
	"competency_backend/pkg/security"
	"competency_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config         *config.Config
	Router         *gin.Engine
	DB             *gorm.DB
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	competency *repository.CompetencyRepository
	skill      *repository.SkillRepository
	question   *repository.QuestionRepository
	user       *repository.UserRepository
	attempt    *repository.AttemptRepository
	ranking    *repository.RankingRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	competency *service.CompetencyService
	skill      *service.SkillService
	question   *service.QuestionService
	user       *service.UserService
	attempt    *service.AttemptService
	ranking    *service.RankingService
	analytics  *service.AnalyticsService
}

type controllers struct {
	competency *controller.CompetencyController
	skill      *controller.SkillController
	question   *controller.QuestionController
	user       *controller.UserController
	attempt    *controller.AttemptController
	ranking    *controller.RankingController
	analytics  *controller.AnalyticsController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		competency: repository.NewCompetencyRepository(db),
		skill:      repository.NewSkillRepository(db),
		question:   repository.NewQuestionRepository(db),
		user:       repository.NewUserRepository(db),
		attempt:    repository.NewAttemptRepository(db),
		ranking:    repository.NewRankingRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		competency: service.NewCompetencyService(repos.competency),
		skill:      service.NewSkillService(repos.skill),
		question:   service.NewQuestionService(repos.question),
		user:       service.NewUserService(repos.user),
		attempt:    service.NewAttemptService(repos.attempt),
		ranking:    service.NewRankingService(repos.ranking),
		analytics:  service.NewAnalyticsService(repos.analytics),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		competency: controller.NewCompetencyController(s.competency),
		skill:      controller.NewSkillController(s.skill),
		question:   controller.NewQuestionController(s.question),
		user:       controller.NewUserController(s.user),
		attempt:    controller.NewAttemptController(s.attempt),
		ranking:    controller.NewRankingController(s.ranking),
		analytics:  controller.NewAnalyticsController(s.analytics),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

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

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("competency-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		// 关闭动作留到 Run 的退出路径，服务期间 provider 必须保持存活
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

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

	// 最后刷掉尚未导出的 span
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
