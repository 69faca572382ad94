package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"guildpulse/config"
	"guildpulse/db"
	"guildpulse/services/activity"
	"guildpulse/services/txmanager"
)

// Recomputes the activity score of every stored record with the current
// formula. Run after a scoring change so old records catch up.
func main() {
	log.Printf("🔄 Starting activity score recalculation...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	activityRepo := db.NewPostgresActivityRecordsRepository(dbConn, cfg.DatabaseSchema)
	txManager := txmanager.NewTransactionManager(dbConn)
	activityService := activity.NewActivityService(activityRepo, txManager, cfg.Version)

	updated, err := activityService.RecalculateScores(context.Background())
	if err != nil {
		log.Printf("❌ Score recalculation failed: %v", err)
		os.Exit(1)
	}

	log.Printf("✅ Recalculated scores for %d activity records", updated)
}
