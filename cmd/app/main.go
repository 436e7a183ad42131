package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"insect_duel/internal/config"
	"insect_duel/internal/game"
	httpServer "insect_duel/internal/http"
	"insect_duel/internal/http/middleware"
	"insect_duel/internal/i18n"
	"insect_duel/internal/logger"
	"insect_duel/internal/service"

	"github.com/gin-gonic/gin"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	decks, err := game.LoadDecks()
	if err != nil {
		logger.Fatal("failed to load decks", "error", err)
	}
	loc, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		logger.Fatal("failed to build message catalog", "error", err)
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer middleware.CloseRedis()

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := httpServer.NewRouter(cfg, service.NewGameService(decks, loc), version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version, "locale", loc.Default().String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
