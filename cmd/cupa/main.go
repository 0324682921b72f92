package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/creditco/cupa/internal/pkg/config"
	"github.com/creditco/cupa/internal/pkg/database"
	"github.com/creditco/cupa/internal/pkg/logger"
	"github.com/creditco/cupa/internal/pkg/middleware"
	nsqpkg "github.com/creditco/cupa/internal/pkg/nsq"
	authHandler "github.com/creditco/cupa/services/auth/handler"
	merchantHandler "github.com/creditco/cupa/services/merchant/handler"
	merchantRepository "github.com/creditco/cupa/services/merchant/repository"
	merchantUsecase "github.com/creditco/cupa/services/merchant/usecase"
	paymentGateway "github.com/creditco/cupa/services/payment/gateway"
	paymentHandler "github.com/creditco/cupa/services/payment/handler"
	paymentRepository "github.com/creditco/cupa/services/payment/repository"
	paymentUsecase "github.com/creditco/cupa/services/payment/usecase"
)

func main() {
	appName := "cupa"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	appLogger := logger.New(configs.Logger)
	appLogger.WithFields(map[string]interface{}{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// NSQ producer for status change events; optional in local setups
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to NSQ")
		}
		defer producer.Stop()
	}

	// Repositories
	merchantRepo := merchantRepository.NewMerchantRepository(configs, postgresClient.GetDB(), redisClient)
	transactionRepo := paymentRepository.NewTransactionRepository(configs, postgresClient.GetDB())
	clientRepo := paymentRepository.NewClientRepository(configs, postgresClient.GetDB())

	// Gateway
	paymentGW := paymentGateway.NewPaymentGW(configs, producer, logger.WithComponent(appLogger, "gateway"))

	// Usecases
	merchantUC := merchantUsecase.NewMerchantUC(configs, merchantRepo, logger.WithComponent(appLogger, "merchant"))
	paymentUC := paymentUsecase.NewPaymentUC(configs, transactionRepo, clientRepo, merchantRepo, paymentGW, logger.WithComponent(appLogger, "payment"))

	// Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RecoveryMiddleware(appLogger))
	e.Use(middleware.LoggerMiddleware(appLogger))

	// Handlers
	paymentHandler.NewPaymentHandler(paymentUC).RegisterRoutes(e,
		middleware.APIKeyGate(merchantUC, configs.API),
		middleware.IdentityMiddleware(configs.JWT),
		middleware.BusinessContext(merchantUC),
		middleware.RequireAuth(),
	)
	merchantHandler.NewMerchantHandler(merchantUC).RegisterRoutes(e, configs.JWT)
	authHandler.NewAuthHandler(configs).RegisterRoutes(e)

	// Start server
	address := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
	go func() {
		if err := e.Start(address); err != nil {
			appLogger.WithError(err).Info("Server stopped")
		}
	}()
	appLogger.WithField("address", address).Info("Server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Server shutdown error")
	}
	appLogger.Info("Server exited")
}
