package main

import (
	"fmt"
	"os"
	"time"

	"sheet-music-backend/internal/config"
	"sheet-music-backend/internal/database"
	"sheet-music-backend/internal/logger"
	"sheet-music-backend/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)
	logrus.Info("Loading initial data from YAML files")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	data, err := seed.LoadDir(dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read %s: %v", dataDir, err)
	}
	result, err := seed.Apply(db, data)
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.Infof("Groups: %d created, %d total", result.GroupsCreated, result.GroupsTotal)
	logrus.Infof("Sheet music: %d created, %d total", result.SheetMusicCreated, result.SheetMusicTotal)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
