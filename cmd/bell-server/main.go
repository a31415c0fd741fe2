package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/svj-dojo/bellwall-api/api/swagger"
	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/engine"
	"github.com/svj-dojo/bellwall-api/internal/handler"
	"github.com/svj-dojo/bellwall-api/internal/middleware"
	"github.com/svj-dojo/bellwall-api/internal/repository"
	"github.com/svj-dojo/bellwall-api/internal/service"
	"github.com/svj-dojo/bellwall-api/pkg/cache"
	"github.com/svj-dojo/bellwall-api/pkg/config"
	"github.com/svj-dojo/bellwall-api/pkg/database"
	"github.com/svj-dojo/bellwall-api/pkg/logger"
	corsmiddleware "github.com/svj-dojo/bellwall-api/pkg/middleware/cors"
	reqidmiddleware "github.com/svj-dojo/bellwall-api/pkg/middleware/requestid"
)

// @title Bellwall API
// @version 1.0.0
// @description Live class-bell engine and schedule editor for the dojo wall display
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect redis", "error", err)
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := repository.Seed(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to seed defaults", "error", err)
	}

	groupRepo := repository.NewGroupRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	validate := validator.New()
	metricsService := service.NewMetricsService()

	player := audio.NewRedisPlayer(redisClient, cfg.Audio.CueChannel, logr)
	player.SetMuted(cfg.Audio.StartMuted)

	dispatcher := engine.NewQueueDispatcher(player, logr)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	bellEngine := engine.New(
		engine.SystemClock(),
		repository.NewEngineSource(db),
		player,
		dispatcher,
		metricsService,
		logr,
		engine.Config{
			TickInterval:     cfg.Engine.TickInterval,
			ReselectInterval: cfg.Engine.ReselectInterval,
			BellCooldown:     cfg.Engine.BellCooldown,
		},
	)
	bellEngine.SetStateSink(repository.NewStateCache(redisClient, cfg.Audio.StateKey, logr))
	if err := bellEngine.Start(ctx); err != nil {
		logr.Sugar().Fatalw("failed to start bell engine", "error", err)
	}
	defer bellEngine.Stop()

	authService := service.NewAuthService(cfg.Auth, validate, logr)
	scheduleService := service.NewScheduleService(scheduleRepo, bellEngine, validate, logr)
	groupService := service.NewGroupService(groupRepo, bellEngine, validate, logr)
	displayService := service.NewDisplayService(bellEngine, logr)
	exportService := service.NewExportService(scheduleService, logr)

	authHandler := handler.NewAuthHandler(authService)
	groupHandler := handler.NewGroupHandler(groupService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, exportService)
	displayHandler := handler.NewDisplayHandler(displayService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)

		// The wall display polls without credentials.
		api.GET("/display/state", displayHandler.State)
		api.GET("/display/next", displayHandler.Next)
		api.PUT("/display/mute", displayHandler.Mute)
		api.GET("/sounds", displayHandler.Sounds)

		api.GET("/groups", groupHandler.List)
		api.GET("/groups/:id/schedules", scheduleHandler.ListByGroup)
		api.GET("/schedules/:id", scheduleHandler.Get)
		api.GET("/schedules/:id/export", scheduleHandler.Export)

		admin := api.Group("", middleware.JWT(authService))
		{
			admin.POST("/groups", groupHandler.Create)
			admin.POST("/groups/:id/activate", groupHandler.Activate)
			admin.DELETE("/groups/:id", groupHandler.Delete)

			admin.POST("/schedules", scheduleHandler.Create)
			admin.PUT("/schedules/:id", scheduleHandler.Update)
			admin.POST("/schedules/:id/duplicate", scheduleHandler.Duplicate)
			admin.DELETE("/schedules/:id", scheduleHandler.Delete)
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
	}
}
