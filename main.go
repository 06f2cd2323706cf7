package main

import (
	"log"
	"net/http"
	"os"

	"github.com/cardforge/cardforge-api/config"
	"github.com/cardforge/cardforge-api/generation"
	"github.com/cardforge/cardforge-api/handlers"
	"github.com/cardforge/cardforge-api/logger"
	"github.com/cardforge/cardforge-api/middleware"
	"github.com/cardforge/cardforge-api/store"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func init() {
	// Load .env file if not in a hosted environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Initialize database connection
	if err := config.Connect(); err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Generation client
	genConfig, err := generation.ConfigFromEnv()
	if err != nil {
		zapLogger.Fatal("cannot configure generation client", zap.Error(err))
	}
	generator := generation.NewOpenAIClient(genConfig, zapLogger)

	setStore := store.NewSetStore(config.Database)
	api := handlers.NewAPI(setStore, generator, zapLogger)
	mux := api.Routes()

	authMiddleware, err := middleware.EnsureValidToken()
	if err != nil {
		zapLogger.Fatal("cannot configure auth middleware", zap.Error(err))
	}

	handler := middleware.WithRequestLogging(zapLogger)(authMiddleware(mux))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	zapLogger.Info("listening", zap.String("addr", serverAddr))
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
