package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"contabilidad/internal/backend"
	"contabilidad/internal/cache"
	"contabilidad/internal/cli"
	"contabilidad/internal/config"
	"contabilidad/internal/format"
	apphttp "contabilidad/internal/http"
	applog "contabilidad/internal/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("info"))
	logger := cli.SetupLogger(cfg.LogLevel)

	ctx, stop := cli.SignalContext(context.Background(), logger)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger *applog.Logger) error {
	formatter, err := format.New(cfg.Locale, cfg.Currency)
	if err != nil {
		return err
	}

	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return err
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Warn("Backend cleanup failed", applog.FieldError, err)
			}
		}()
	}

	srv := apphttp.NewServer(":"+cfg.Port, res.Source, formatter, apphttp.Options{
		Backend: bcfg.Type.String(),
		Logger:  logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, shutdownTimeout)
	})
	if res.Cache != nil {
		janitor := cache.NewJanitor(cfg.CacheSweepInterval, logger)
		janitor.Register(res.Cache.Cache())
		g.Go(func() error {
			return janitor.Run(gctx)
		})
	}

	logger.Info("Starting contabilidad server",
		applog.FieldOperation, applog.OpStartup,
		"port", cfg.Port,
		applog.FieldBackend, bcfg.Type.String(),
		"locale", formatter.Locale(),
		"currency", formatter.CurrencyCode())
	return g.Wait()
}
