package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"caregiver-shifts-backend/internal/auth"
	"caregiver-shifts-backend/internal/config"
	"caregiver-shifts-backend/internal/database"
	"caregiver-shifts-backend/internal/logger"
	"caregiver-shifts-backend/internal/repository"
	"caregiver-shifts-backend/internal/seed"
	"caregiver-shifts-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding caregivers and shifts YAML files")
	flag.Parse()

	log.Println("Loading initial data from YAML files...")
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := seed.Load(*dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	shiftRepo := repository.NewShiftRepository(db, cfg.StoreTimeout())
	caregiverRepo := repository.NewCaregiverRepository(db, cfg.StoreTimeout())
	// seeded shifts must resolve against the caregivers just upserted
	directory := service.NewDatabaseDirectory(caregiverRepo)
	shiftService := service.NewShiftService(shiftRepo, directory, auth.NewAuthorizer(), validator.New(), cfg.Location())

	res, err := seed.NewLoader(caregiverRepo, shiftRepo, shiftService, "seed").Apply(context.Background(), data)
	if err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Printf("Caregivers: %d upserted", res.CaregiversUpserted)
	log.Printf("Shifts: %d created, %d skipped", res.ShiftsCreated, res.ShiftsSkipped)
	log.Println("Initial data loaded successfully")
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM query logs during data loading
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
