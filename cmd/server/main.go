package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/fyyur/internal/config"   // Internal config loader
	"github.com/iliyamo/fyyur/internal/database" // MySQL pool and schema
	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router" // Internal router setup
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/view"
)

func main() {
	_ = godotenv.Load() // a missing .env is fine; the environment wins either way

	cfg := config.Load() // Load environment config
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logging.Fatal().Err(err).Str("host", cfg.DBHost).Msg("database connection failed")
	}
	defer db.Close()
	if cfg.DBMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			logging.Fatal().Err(err).Msg("schema migration failed")
		}
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb != nil {
		defer rdb.Close()
	}
	secure := cfg.Env == "prod"
	flashes := flash.New(rdb, cfg.SessionSecret, secure)

	var events service.EventPublisher = service.Noop{}
	if cfg.EventsEnabled {
		events = service.NewPublisher(cfg.AMQPURL)
	}

	renderer, err := view.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("template parsing failed")
	}

	h := handler.New(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		flashes,
		events,
	)
	h.Pinger = db

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())
	router.RegisterRoutes(e, h) // Register operational routes
	router.RegisterPages(e, h)  // Register HTML pages

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port // Address string with port
	go func() {
		logging.Info().Str("addr", addr).Str("env", cfg.Env).Bool("redis", rdb != nil).
			Bool("events", cfg.EventsEnabled).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server stopped") // Log and exit if server fails
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	logging.Info().Msg("server stopped")
}
