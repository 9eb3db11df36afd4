package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"infragen/app/config"
	"infragen/app/usecase"
	"infragen/internal/infrastructure/llm"
	"infragen/internal/infrastructure/metrics"
	"infragen/internal/infrastructure/store/memory"
	"infragen/internal/infrastructure/transport"
)

func main() {
	_ = godotenv.Load()

	// logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// load config
	cfg := loadConfig()

	if cfg.LLM.APIKey == "" {
		// Not fatal: generate actions fail with an authentication error until
		// the credential is supplied.
		logger.Warn("GEMINI_API_KEY is not set; generation requests will be rejected")
	}

	// Repositories
	resultStore := memory.NewResultStore()

	// LLM client
	llmClient := llm.NewGeminiGenerator(
		cfg.LLM.APIKey,
		cfg.LLM.BaseURL,
		cfg.LLM.Model,
	)

	// Usecases / services
	generateSvc := usecase.NewGenerateService(resultStore, llmClient, logger)
	artifactSvc := usecase.NewArtifactService(resultStore)

	// Transport (HTTP handlers)
	handler := transport.NewGeneratorHandler(
		generateSvc,
		artifactSvc,
		logger,
	)

	// Router and server
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.Info("starting metrics server", "addr", cfg.Metrics.Addr)
		metrics.StartMetricsServer(cfg.Metrics.Addr)
	}()

	// Start HTTP server
	go func() {
		logger.Info("starting HTTP server", "addr", addr, "model", cfg.LLM.Model)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "err", err)
			cancel()
		}
	}()

	// OS signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
		logger.Info("context cancelled")
	}

	// Shutdown sequence
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}

	logger.Info("service stopped")
}

func loadConfig() *config.Config {
	return &config.Config{
		Server: config.HTTPServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  2 * time.Minute,
			WriteTimeout: 2 * time.Minute,
		},
		LLM: config.LLMConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
			Timeout: 2 * time.Minute,
		},
		Metrics: config.MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ":2112"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
