package main

import (
	"context"

	"marktplaats/client/internal/config"
	"marktplaats/client/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Marktplaats search...")

	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize container with all dependencies
	app, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the application
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}

	log.Info("Application finished successfully")
}
