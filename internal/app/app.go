package app

import (
	"campus_circle_backend/internal/config"
	"campus_circle_backend/internal/controller"
	"campus_circle_backend/internal/repository"
	"campus_circle_backend/internal/service"
	"campus_circle_backend/internal/util"
	"campus_circle_backend/pkg/configwatcher"
	"campus_circle_backend/pkg/database"
	"campus_circle_backend/pkg/logger"
	"campus_circle_backend/pkg/monitoring"
	"campus_circle_backend/pkg/security"
	"campus_circle_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	post        *repository.PostRepository
	request     *repository.FriendRequestRepository
	friendship  *repository.FriendshipRepository
	trust       *repository.TrustRepository
	endorsement *repository.EndorsementRepository
	level       *repository.LevelRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	post         *service.PostService
	relationship *service.RelationshipService
	trust        *service.TrustService
	endorse      *service.EndorseService
	level        *service.LevelService
	storage      *service.StorageService
}

type controllers struct {
	auth   *controller.AuthController
	user   *controller.UserController
	post   *controller.PostController
	friend *controller.FriendController
	trust  *controller.TrustController
	level  *controller.LevelController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		post:        repository.NewPostRepository(db),
		request:     repository.NewFriendRequestRepository(db),
		friendship:  repository.NewFriendshipRepository(db, rdb),
		trust:       repository.NewTrustRepository(db),
		endorsement: repository.NewEndorsementRepository(db),
		level:       repository.NewLevelRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.level = service.NewLevelService(repos.level, repos.post)
	s.auth = service.NewAuthService(repos.user, s.level, cfg)
	s.post = service.NewPostService(repos.post, repos.endorsement, s.level)
	s.relationship = service.NewRelationshipService(repos.request, repos.friendship, repos.user)
	s.trust = service.NewTrustService(repos.trust, repos.user)
	s.endorse = service.NewEndorseService(repos.endorsement, repos.post, s.level)
	s.user = service.NewUserService(repos.user, s.relationship, s.trust, s.post, s.endorse, s.level)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth),
		user:   controller.NewUserController(s.user, s.storage),
		post:   controller.NewPostController(s.post, s.endorse),
		friend: controller.NewFriendController(s.relationship),
		trust:  controller.NewTrustController(s.trust),
		level:  controller.NewLevelController(s.level),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

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

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("campus-circle", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		// 服务停止时再关，留给 Run 的优雅退出路径
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		reloaded, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		app.Config = reloaded
		for _, callback := range app.configCallbacks {
			callback(reloaded)
		}
		logger.Log.Info("Configuration reloaded")
	})

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

	if err := a.shutdownTracer(ctx); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}

	log.Println("Server exiting")
}

// shutdownTracer 冲刷并关闭 TracerProvider，未启用追踪时为空操作
func (a *App) shutdownTracer(ctx context.Context) error {
	if a.tracer == nil {
		return nil
	}
	return a.tracer.Shutdown(ctx)
}
