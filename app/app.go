package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"licitaya-api/internal/config"
	"licitaya-api/internal/controller"
	"licitaya-api/internal/mailer"
	"licitaya-api/internal/repo"
	"licitaya-api/internal/service"
	"licitaya-api/pkg/http_server"
	"licitaya-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const mailQueueBuffer = 64

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string) error {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		return err
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no change made by migration scripts")
			return nil
		}

		return err
	}

	return nil
}

func Run() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error occurred while loading config")
	}

	log.Info().Msg("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error occurred while connecting to db")
	}
	defer postgresDB.Close()

	log.Info().Msg("Running migrations...")
	if err := runMigrations(postgresDB, cfg.MigrationsURL); err != nil {
		log.Fatal().Err(err).Msg("error occurred while running migrations")
	}

	log.Info().Msg("Starting mail dispatcher...")
	sender := mailer.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.VerifyBaseURL)
	dispatcher := mailer.NewDispatcher(sender, mailQueueBuffer, log.Logger)
	dispatcher.Start()

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, dispatcher)
	handler := echo.New()

	log.Info().Msg("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, cfg.AllowOrigins)

	log.Info().Str("address", cfg.ServerAddress).Msg("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Info().Msg("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info().Str("signal", s.String()).Msg("Got signal")
	case err = <-httpServer.Notify():
		log.Error().Err(err).Msg("Server notify error")
	}

	log.Info().Msg("Shutting down...")
	if err = httpServer.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}

	// Let the worker drain queued verification emails before exit.
	dispatcher.Stop()
	log.Info().Msg("Successful shutdown")
}
