package main

import (
	"log"

	"github.com/joho/godotenv"

	"ocrtoolkit/cmd"
	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load configuration and initialize logger
	cfg := config.Cached()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Printf("Warning: Invalid logger configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	// Execute CLI commands
	cmd.Execute()
}
