package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/hellodg123/ShipReward.in/internal/api/http"
	"github.com/hellodg123/ShipReward.in/internal/api/http/handlers"
	"github.com/hellodg123/ShipReward.in/internal/auth"
	"github.com/hellodg123/ShipReward.in/internal/config"
	"github.com/hellodg123/ShipReward.in/internal/events"
	"github.com/hellodg123/ShipReward.in/internal/observability"
	"github.com/hellodg123/ShipReward.in/internal/persistence"
	"github.com/hellodg123/ShipReward.in/internal/repository"
	"github.com/hellodg123/ShipReward.in/internal/service"
	"github.com/hellodg123/ShipReward.in/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	db := mongo.Database()
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewStatusCheckRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	statusService := service.NewStatusService(statusRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo),
		Auth:           handlers.NewAuthHandler(authService),
		Status:         handlers.NewStatusHandler(statusService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
