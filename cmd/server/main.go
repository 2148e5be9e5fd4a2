package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealer-site/cmd/server/config"
	"dealer-site/internal/cache"
	"dealer-site/internal/fetcher"
	"dealer-site/internal/listings"
	"dealer-site/internal/normalizer"
	"dealer-site/internal/server"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// UserAgent is user agent header value used when fetching listings.
	UserAgent = "AutoTrader-Client-App/1.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// .env file is optional, real deployments configure via the environment.
	_ = godotenv.Load()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	if err := validator.New().Struct(cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("invalid configuration")
	}

	store := cache.NewFileStore(cfg.Cache.Path, cfg.Cache.MaxAge, &logger)

	fet := fetcher.NewFetcher(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.APIURL,
		cfg.Username,
		cfg.Password,
		UserAgent,
	)

	service := listings.NewService(store, fet, normalizer.NewNormalizer(), &logger)

	srv, err := server.New(service, &logger)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't build server")
	}

	eg, egCtx := errgroup.WithContext(context.Background())

	eg.Go(func() error {
		if err := srv.Start(":" + cfg.Port); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// handle graceful shutdown
	eg.Go(func() error {
		termChan := make(chan os.Signal, 1)
		signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-termChan:
		case <-egCtx.Done():
			return nil
		}

		logger.Info().Msg("graceful shutdown start")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	logger.Info().
		Str("port", cfg.Port).
		Msg("dealer site up and running")

	if err := eg.Wait(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("server stopped with error")
	}

	logger.Info().Msg("graceful shutdown successful")
}
