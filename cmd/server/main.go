package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	api "carservice-backend/internal/api/http"
	"carservice-backend/internal/config"
	"carservice-backend/internal/logger"
	"carservice-backend/internal/repository/postgres"
	"carservice-backend/internal/security"
	"carservice-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car service backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Services
	activitySvc := service.NewActivityService(store.ActivityRepository, cfg.Audit.RecentLimit)
	jobSvc := service.NewJobService(store.JobRepository, activitySvc)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.JobRepository, activitySvc)
	billingSvc := service.NewBillingService(store.JobRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, activitySvc)
	carSvc := service.NewCarService(store.CarRepository, activitySvc)
	garageSvc := service.NewGarageService(store.GarageRepository, activitySvc)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	dashboardSvc := service.NewDashboardService(
		store.CustomerRepository,
		store.CarRepository,
		store.GarageRepository,
		store.JobRepository,
		activitySvc,
	)

	// Initialize HTTP handlers and router
	router := api.NewRouter(api.Handlers{
		Auth:      api.NewAuthHandler(authSvc),
		Job:       api.NewJobHandler(jobSvc),
		Payment:   api.NewPaymentHandler(paymentSvc),
		Billing:   api.NewBillingHandler(billingSvc),
		Customer:  api.NewCustomerHandler(customerSvc, carSvc),
		Car:       api.NewCarHandler(carSvc),
		Garage:    api.NewGarageHandler(garageSvc),
		Dashboard: api.NewDashboardHandler(dashboardSvc, activitySvc),
	}, authMiddleware)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
