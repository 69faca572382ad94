package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "guildpulse/clients/discord"
	"guildpulse/config"
	"guildpulse/db"
	"guildpulse/handlers"
	"guildpulse/services/activity"
	"guildpulse/services/exclusions"
	"guildpulse/services/guildlinks"
	"guildpulse/services/tracker"
	"guildpulse/services/txmanager"
	usecase "guildpulse/usecases/discord"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	activityRepo := db.NewPostgresActivityRecordsRepository(dbConn, cfg.DatabaseSchema)
	exclusionsRepo := db.NewPostgresExclusionsRepository(dbConn, cfg.DatabaseSchema)
	guildLinksRepo := db.NewPostgresGuildLinksRepository(dbConn, cfg.DatabaseSchema)

	// Initialize transaction manager
	txManager := txmanager.NewTransactionManager(dbConn)

	activityService := activity.NewActivityService(activityRepo, txManager, cfg.Version)
	exclusionsService := exclusions.NewExclusionsService(exclusionsRepo)
	guildLinksService := guildlinks.NewGuildLinksService(guildLinksRepo)
	trackerService := tracker.NewTrackerService()

	discordClient, err := discordclient.NewDiscordClient(cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}

	discordUseCase := usecase.NewDiscordUseCase(
		discordClient,
		activityService,
		exclusionsService,
		guildLinksService,
		trackerService,
		usecase.RolesConfig{
			MemberRole: cfg.RolesConfig.MemberRole,
			AdminRole:  cfg.RolesConfig.AdminRole,
		},
	)

	discordHandler := handlers.NewDiscordHandler(discordUseCase)
	discordHandler.Register(discordClient.Session())

	if err := discordClient.Open(); err != nil {
		return err
	}
	defer func() {
		if err := discordClient.Close(); err != nil {
			log.Printf("❌ Failed to close Discord session: %v", err)
		}
	}()

	botUser, err := discordClient.GetBotUser()
	if err != nil {
		return err
	}
	log.Printf("✅ Connected to Discord as %s", botUser.Username)

	// Slash commands can only be registered once the session knows the
	// application id
	if err := discordClient.RegisterCommands(); err != nil {
		return err
	}

	router := mux.NewRouter()
	healthHandler := handlers.NewHealthHandler(dbConn, trackerService, cfg.Version)
	healthHandler.RegisterRoutes(router)

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Printf("✅ Shutdown complete")
	return nil
}
