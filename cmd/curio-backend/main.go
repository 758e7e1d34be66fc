// Package main Curio Backend API
//
// @title           Curio Backend API
// @version         1.0
// @description     API формы обратной связи, регистрации и аутентификации пользователей

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3001
// @BasePath  /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/curioapp/curio-backend/internal/app/curiobackend"
	"github.com/curioapp/curio-backend/internal/config"
)

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting curio-backend", slog.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := curiobackend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("curio-backend stopped gracefully")
}
