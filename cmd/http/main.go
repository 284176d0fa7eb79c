package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rafaelleal24/ecommerce/docs"
	"github.com/rafaelleal24/ecommerce/internal/adapters/config"
	"github.com/rafaelleal24/ecommerce/internal/adapters/database"
	"github.com/rafaelleal24/ecommerce/internal/adapters/database/repository"
	"github.com/rafaelleal24/ecommerce/internal/adapters/http"
	"github.com/rafaelleal24/ecommerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/ecommerce/internal/adapters/http/middleware"
	"github.com/rafaelleal24/ecommerce/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/ecommerce/internal/adapters/redis"
	"github.com/rafaelleal24/ecommerce/internal/core/logger"
	"github.com/rafaelleal24/ecommerce/internal/core/port"
	"github.com/rafaelleal24/ecommerce/internal/core/service"
)

// @title       Ecommerce API
// @version     1.0
// @description Product catalog CRUD API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(logger.Options{
		Endpoint:     cfg.Logger.Endpoint,
		ServiceName:  cfg.Logger.ServiceName,
		IsProduction: cfg.Logger.IsProduction,
		Level:        logger.ParseLevel(cfg.Logger.Level),
	}); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// database
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to database", err, map[string]any{"driver": cfg.Database.Driver})
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error(ctx, "Failed to close database", err, nil)
		}
	}()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal(ctx, "Failed to migrate database", err, nil)
	}
	logger.Info(ctx, "Connected to database", map[string]any{"driver": cfg.Database.Driver})

	checkers := []controllers.HealthChecker{
		{Name: "database", Check: func(ctx context.Context) error { return database.Ping(ctx, db) }},
	}

	// optional redis rate limiter
	var rateLimiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		defer redisClient.Close()
		rateLimiter = redis.NewRateLimiter(redisClient)
		checkers = append(checkers, controllers.HealthChecker{Name: "redis", Check: redisClient.Ping})
		logger.Info(ctx, "Connected to Redis", map[string]any{
			"rate_limit.requests": cfg.RateLimit.Requests,
			"rate_limit.window":   cfg.RateLimit.Window.String(),
		})
	}

	// optional rabbitmq event publisher
	var broker port.BrokerPort = rabbitmq.NewNoopBroker()
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		broker = publisher
		checkers = append(checkers, controllers.HealthChecker{Name: "rabbitmq", Check: publisher.HealthCheck})
		logger.Info(ctx, "Connected to RabbitMQ", map[string]any{"exchange": cfg.RabbitMQ.Exchange.Name})
	}
	defer broker.Close()

	// services and controllers
	productService := service.NewProductService(repository.NewProductRepository(db), broker)
	productController := controllers.NewProductController(productService)
	healthController := controllers.NewHealthController(checkers)

	router := http.NewRouter(healthController, productController, rateLimiter, cfg.RateLimit, cfg.HTTP.AllowedOrigins)

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Error(ctx, "HTTP server failed", err, nil)
	}
	logger.Info(ctx, "HTTP server stopped", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
