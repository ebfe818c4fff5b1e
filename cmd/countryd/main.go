// Command countryd serves country reference data over HTTP.
//
// Configuration is read from the environment and an optional .env file in
// the working directory. See internal/config for the variables.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/country"
	"github.com/dmitrymomot/country/internal/config"
	"github.com/dmitrymomot/country/internal/server"
	"github.com/dmitrymomot/country/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("countryd failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logger, server.RequestIDExtractor()).With(slog.String("app", "countryd"))
	defer logger.Flush(2 * time.Second)

	repo, err := country.NewRepository(repositoryOptions(cfg.Country, log)...)
	if err != nil {
		return err
	}

	if locales, err := repo.Locales(); err != nil {
		log.Warn("listing datasets failed", slog.Any("error", err))
	} else {
		log.Info("datasets available",
			slog.Any("locales", locales),
			slog.String("default_locale", repo.DefaultLocale()),
		)
	}

	srv := server.New(repo,
		server.WithLogger(log),
		server.WithReadyTimeout(cfg.HTTP.ReadyTimeout),
	)

	return srv.Run(ctx, server.RunConfig{
		Addr:            cfg.HTTP.Addr,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	})
}

func repositoryOptions(cfg config.CountryConfig, log *slog.Logger) []country.RepositoryOption {
	opts := []country.RepositoryOption{
		country.WithLogger(log),
		country.WithLocaleFallbacks(cfg.Rules.Fallbacks),
		country.WithLocaleMapping(cfg.Rules.Mapping),
	}
	if l := cfg.EffectiveDefaultLocale(); l != "" {
		opts = append(opts, country.WithDefaultLocale(l))
	}
	if cfg.DatasetDir != "" {
		opts = append(opts, country.WithDirectory(cfg.DatasetDir))
	}
	return opts
}
