package main

import (
	"fmt"
	"os"

	"poseidon/internal/config"
	"poseidon/internal/database"
	"poseidon/internal/logger"
	"poseidon/internal/router"
)

// @title           Poseidon API
// @version         1.0
// @description     Poseidon manages trading reference data: bids, curve points, ratings, rules, trades and users.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	svc := router.NewServices(dbManager.DB(), appConfig)

	if appConfig.BootstrapAdmin() {
		created, err := svc.User.EnsureAdmin(appConfig.AdminUsername, appConfig.AdminPassword, appConfig.AdminFullname)
		if err != nil {
			return fmt.Errorf("failed to bootstrap administrator: %w", err)
		}
		if created {
			log.Infow("bootstrap administrator created", "username", appConfig.AdminUsername)
		}
	}

	engine := router.New(appConfig, svc)

	log.Infof("Starting Poseidon server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return engine.Run(":" + appConfig.Port)
}
