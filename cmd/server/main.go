package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vere-app/vere/adapters/cache"
	"github.com/vere-app/vere/adapters/event"
	httpAdapter "github.com/vere-app/vere/adapters/http"
	"github.com/vere-app/vere/adapters/media_storage"
	"github.com/vere-app/vere/adapters/persistence"
	analyticsUC "github.com/vere-app/vere/internal/application/usecase/analytics"
	authUC "github.com/vere-app/vere/internal/application/usecase/auth"
	mediaUC "github.com/vere-app/vere/internal/application/usecase/media"
	pageUC "github.com/vere-app/vere/internal/application/usecase/page"
	profileUC "github.com/vere-app/vere/internal/application/usecase/profile"
	themeUC "github.com/vere-app/vere/internal/application/usecase/theme"
	"github.com/vere-app/vere/internal/config"
	"github.com/vere-app/vere/pkg/auth"
	"github.com/vere-app/vere/pkg/logger"
	"github.com/vere-app/vere/pkg/metrics"
	"github.com/vere-app/vere/pkg/tracing"
)

func main() {
	fmt.Println("Start Vere API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "vere-api")
		if err != nil {
			appLogger.Fatal("cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	themeRepo := persistence.NewPostgresThemeRepo(dbPool, appLogger)
	analyticsRepo := persistence.NewRedisViewEventRepo(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	pageCache := cache.NewFreecacheProvider(cfg, appLogger)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, pageCache, appLogger)
	themeUseCase := themeUC.NewThemeUseCase(themeRepo, profileRepo, kafkaClient, pageCache, appLogger)
	analyticsUseCase := analyticsUC.NewAnalyticsUseCase(analyticsRepo, profileRepo, kafkaClient, appLogger)
	viewPageUseCase := pageUC.NewViewPageUseCase(profileRepo, themeRepo, analyticsRepo, analyticsUseCase, pageCache, appLogger)
	uploadAssetUseCase := mediaUC.NewUploadAssetUseCase(profileRepo, uploader, pageCache, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	themeHandler := httpAdapter.NewThemeHandler(themeUseCase)
	analyticsHandler := httpAdapter.NewAnalyticsHandler(analyticsUseCase)
	pageHandler := httpAdapter.NewPageHandler(viewPageUseCase)
	mediaHandler := httpAdapter.NewMediaHandler(uploadAssetUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	optionalAuth := httpAdapter.OptionalAuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.GinMiddleware())
	router.Use(errorMiddleware)

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public page rendering
	router.GET("/u/:username", optionalAuth, pageHandler.ViewPageHTML)

	api := router.Group("/api")
	{
		api.GET("/pages/:username", optionalAuth, pageHandler.ViewPageJSON)
		api.GET("/themes", optionalAuth, themeHandler.ListThemes)
		api.POST("/profiles/:id/save", analyticsHandler.SaveProfile)

		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				profiles := adminPrivate.Group("/profiles")
				{
					profiles.POST("", profileHandler.CreateProfile)
					profiles.GET("", profileHandler.ListProfiles)
					profiles.GET("/:id", profileHandler.GetProfile)
					profiles.PUT("/:id", profileHandler.UpdateProfile)
					profiles.POST("/:id/theme", themeHandler.ApplyTheme)
					profiles.GET("/:id/analytics", analyticsHandler.GetSummary)
				}

				themes := adminPrivate.Group("/themes")
				{
					themes.POST("", themeHandler.CreateTheme)
					themes.PUT("/:id/publish", themeHandler.PublishTheme)
				}

				adminPrivate.POST("/media", mediaHandler.UploadAsset)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
