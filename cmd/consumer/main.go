// Command consumer appends activity events published by the web server to
// the activity log.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConsumer()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("queue", queue.ActivityQueueName).
		Str("file", filepath.Join(cfg.ActivityLogDir, queue.ActivityLogFile)).
		Msg("activity consumer starting")
	err := queue.StartActivityConsumer(ctx, cfg.AMQPURL, cfg.ActivityLogDir)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("activity consumer failed")
	}
	logging.Info().Msg("activity consumer stopped")
}
