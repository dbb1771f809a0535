package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/corrooli/passphrase-service/internal/app"
	"github.com/corrooli/passphrase-service/internal/config"
	"github.com/corrooli/passphrase-service/internal/handler"
	"github.com/corrooli/passphrase-service/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, nil)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	// Warm the pool so the first request does not pay the fetch cost. A
	// failure here is not fatal: the pool loads lazily on demand.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 30*time.Second)
	if err := application.LoadPool(warmCtx); err != nil {
		slog.Warn("word pool warm-up failed, will retry on first request", "error", err)
	} else {
		slog.Info("word pool loaded", "words", application.PoolSize())
	}
	cancelWarm()

	genHandler := handler.NewGenerateHandler(application)
	indexHandler := handler.NewIndexHandler(application)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.RateLimit(cfg.Server.RequestsPerSecond, cfg.Server.Burst))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", indexHandler.HandleIndex)
	r.Post("/", indexHandler.HandleIndex)
	r.Post("/api/v1/generate", genHandler.HandleGenerate)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
