// Package main Tutor Booking API
//
// @title           Tutor Booking API
// @version         1.0
// @description     API сервиса бронирования занятий с репетиторами

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
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

	"github.com/magabrotheeeer/tutor-booking/internal/app/tutorbooking"
	"github.com/magabrotheeeer/tutor-booking/internal/config"
	"github.com/magabrotheeeer/tutor-booking/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	logger := sl.New(cfg.Env)

	logger.Info("starting tutor-booking",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := tutorbooking.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("tutor-booking stopped gracefully")
}
