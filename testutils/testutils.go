package testutils

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"guildpulse/config"
)

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From services/ directory
	_ = godotenv.Load("../../.env.test")
	_ = godotenv.Load(".env.test")
	_ = godotenv.Load()

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// TestGuildID returns a unique guild id so parallel test runs don't
// collide on the (user, guild) unique index.
func TestGuildID() string {
	return "test-guild-" + uuid.New().String()
}

// TestUserID returns a unique user id for test fixtures.
func TestUserID() string {
	return "test-user-" + uuid.New().String()
}

// TestChannelID returns a unique channel id for test fixtures.
func TestChannelID() string {
	return "test-channel-" + uuid.New().String()
}
