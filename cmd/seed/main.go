package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/seed"
	"github.com/taskhive/taskhive-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	db, err := config.NewDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	ctx := &seed.Context{DB: db, Logger: appLogger}
	if err := seed.Run(ctx); err != nil {
		appLogger.Fatal("Seeding failed", err)
	}

	appLogger.Info("Seeding completed")
	appLogger.Sync()
}
