package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sponsorlink/payments/internal/pkg/config"
	"github.com/sponsorlink/payments/internal/pkg/database"
	"github.com/sponsorlink/payments/internal/pkg/health"
	"github.com/sponsorlink/payments/internal/pkg/logger"
	"github.com/sponsorlink/payments/internal/pkg/middleware"
	natspkg "github.com/sponsorlink/payments/internal/pkg/nats"
	"github.com/sponsorlink/payments/internal/pkg/server"
	"github.com/sponsorlink/payments/services/payments/gateway"
	"github.com/sponsorlink/payments/services/payments/handler"
	"github.com/sponsorlink/payments/services/payments/repository"
	"github.com/sponsorlink/payments/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/payments.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NATS")
	}
	defer natsClient.Close()
	producer := natspkg.NewProducer(natsClient)

	// Initialize repository
	paymentRepo := repository.NewPaymentRepository(postgresClient.GetDB())

	// Initialize gateway registry
	gateways := gateway.NewRegistry(configs)

	// Initialize use case
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, gateways, producer)

	// Initialize handlers
	paymentHandler := handler.NewPaymentHandler(paymentUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	authMW := middleware.JWTAuthMiddleware(configs.JWT)
	limiterMW := middleware.UserRateLimiter(
		configs.Payment.RateLimit,
		time.Duration(configs.Payment.RateLimitWindow)*time.Minute,
		redisClient.GetClient(),
	)
	paymentHandler.RegisterRoutes(e, authMW, limiterMW)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped with error")
	}
}
