package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "aris-backend/internal/api/http"
	"aris-backend/internal/config"
	"aris-backend/internal/logger"
	"aris-backend/internal/repository/postgres"
	"aris-backend/internal/security"
	"aris-backend/internal/service"
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
	logger.Info("Starting Aris backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
	tenantSvc := service.NewTenantService(store.TenantRepository)
	authSvc := service.NewAuthService(store.UserRepository, store.TenantRepository, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository, store.RentalRepository, cfg.Rentals.DueSoonLookaheadDays)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.CustomerRepository,
		store.InvoiceRepository,
		emailSvc,
		cfg.Rentals.DueSoonLookaheadDays,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:    tokenManager,
		Tenants:   tenantSvc,
		Auth:      authSvc,
		Equipment: equipmentSvc,
		Customers: customerSvc,
		Rentals:   rentalSvc,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
