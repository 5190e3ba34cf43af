package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astgym/gym-ai/internal/ai"
	"astgym/gym-ai/internal/api"
	"astgym/gym-ai/internal/catalog"
	"astgym/gym-ai/internal/config"
	"astgym/gym-ai/internal/generation"
	"astgym/gym-ai/internal/logger"
	"astgym/gym-ai/internal/repository"
	"astgym/gym-ai/internal/service"

	"github.com/gin-gonic/gin"
)

// @title AsT Gym AI API
// @version 1.0
// @description Generates AI workout programs, tracks sessions and onboarding for a single owner.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Starting AsT Gym AI server", "store", cfg.Store.Backend, "model", cfg.Gemini.Model)

	ctx := context.Background()

	// --- Persistent Store ---
	kv, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Could not open store", "backend", cfg.Store.Backend, "error", err)
	}
	defer closeStore()
	store := repository.NewAppStore(kv)

	// --- Model Client ---
	gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.Fatal("Could not create Gemini client", "error", err)
	}

	// --- Generation Pipeline ---
	lookup := generation.NewMediaLookup(gemini, cfg.Generation.MaxVideoLinks, cfg.Gemini.LookupTimeout, log)
	enricher := generation.NewEnricher(lookup, cfg.Generation.MediaBatchSize, log)
	orchestrator := generation.NewOrchestrator(gemini, enricher, generation.Options{
		NarrativeThreshold: cfg.Generation.NarrativeThreshold,
		GenerateTimeout:    cfg.Gemini.GenerateTimeout,
	}, log)
	analyzer := generation.NewAnalyzer(gemini, cfg.Gemini.GenerateTimeout, log)

	programs, err := catalog.Load()
	if err != nil {
		log.Fatal("Could not load static programs", "error", err)
	}

	// --- Initialize Services ---
	services := api.Services{
		Program:   service.NewProgramService(store, orchestrator, programs, log),
		Log:       service.NewWorkoutLogService(store),
		Profile:   service.NewProfileService(store, analyzer),
		Dashboard: service.NewDashboardService(store),
	}
	if cfg.Auth.Enabled {
		services.Auth = service.NewAuthService(cfg.Auth.PassphraseHash, cfg.Auth.Secret, cfg.Auth.Expiration)
	} else {
		log.Warn("Authentication is disabled; the API is open to anyone who can reach it")
	}

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode == "production" || cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(log))
	api.SetupRoutes(router, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		log.Info("Server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// In-flight generations are not waited for beyond this window.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server exiting.")
}
