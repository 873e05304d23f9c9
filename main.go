package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"healthtrack-app-server/internal/ai"
	"healthtrack-app-server/internal/config"
	"healthtrack-app-server/internal/routes"
	"healthtrack-app-server/internal/store"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load environment variables; a missing .env is fine in deployed
	// environments where variables come from the platform.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	// Open the document store
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("opening document store")
	}
	defer st.Close()

	// Completion API client for the chat assistant
	completer := ai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	if cfg.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Origin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, st, cfg, completer, logger)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
