package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	ClientID string
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.ClientID != "" &&
		c.BotToken != ""
}

type RolesConfig struct {
	// MemberRole is the guild role required for a user's activity to be
	// tracked. Optional: when empty every member is tracked.
	MemberRole string
	// AdminRole is the guild role required to run admin commands.
	// Optional: when empty admin commands are open to everyone.
	AdminRole string
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	Version            string

	DiscordConfig DiscordConfig
	RolesConfig   RolesConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		Version:            getEnvWithDefault("APP_VERSION", "dev"),

		DiscordConfig: DiscordConfig{
			ClientID: os.Getenv("DISCORD_CLIENT_ID"),
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		},

		RolesConfig: RolesConfig{
			MemberRole: os.Getenv("DISCORD_MEMBER_ROLE"),
			AdminRole:  os.Getenv("DISCORD_ADMIN_ROLE"),
		},
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		return nil, fmt.Errorf("discord integration is not fully configured")
	}

	if config.RolesConfig.AdminRole == "" {
		log.Printf("⚠️ DISCORD_ADMIN_ROLE not set - admin commands will be open to all members")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
