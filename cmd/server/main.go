package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/balapuneethsujay07/zenkira-store/internal/cache"
	"github.com/balapuneethsujay07/zenkira-store/internal/config"
	zhttp "github.com/balapuneethsujay07/zenkira-store/internal/http"
	"github.com/balapuneethsujay07/zenkira-store/internal/recommend"
	"github.com/balapuneethsujay07/zenkira-store/internal/seed"
	"github.com/balapuneethsujay07/zenkira-store/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	st := store.NewMemoryStore(seed.Products(), store.Options{EnforceStock: cfg.EnforceStock})

	c := cache.New(cfg.CacheTTL)
	defer c.Close()

	var recommender recommend.Recommender = recommend.Nop{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := recommend.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			log.Warn("recommendations disabled", zap.Error(err))
		} else {
			recommender = gemini
		}
	} else {
		log.Info("no GEMINI_API_KEY set, recommendations disabled")
	}

	router := zhttp.NewRouter(st, c, recommender, log)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server started", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
