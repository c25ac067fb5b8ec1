package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/archons/backend/internal/config"
	v1 "github.com/archons/backend/internal/controllers/v1"
	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
	"github.com/archons/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// configure loads and validates the configuration and sets the gin mode.
//
// Validation runs first since gin panics on unknown modes.
func configure() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	return cfg, nil
}

func main() {
	cfg, err := configure()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	driver := models.Driver(cfg.DBDriver)
	if driver == models.DriverSQLite {
		// Create data directory
		err = os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(driver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		publisher, err = events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	co := v1.Controller{
		Ledger: ledger.NewService(db, ledger.Options{
			Publisher:       publisher,
			DefaultCurrency: cfg.DefaultCurrency,
		}),
	}

	r, teardown, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout of 5 seconds.
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server")
	}

	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Event publisher")
	}

	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		log.Error().Err(err).Msg("Database")
	}

	log.Info().Msg("Server exiting")
}
