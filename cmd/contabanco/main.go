package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"contabanco/internal/account/metrics"
	"contabanco/internal/account/service"
	"contabanco/internal/audit"
	"contabanco/internal/platform/config"
	"contabanco/internal/platform/httpserver"
	"contabanco/internal/platform/logger"
	"contabanco/internal/terminal"
	httptransport "contabanco/internal/transport/http"
)

// main wires dependencies and hands stdin/stdout to the terminal shell.
// Registration logic lives in internal/account.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if envErr != nil {
		log.Debug("no .env file loaded", "error", envErr)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	auditStore := audit.NewInMemoryStore()
	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(metrics.New(reg)),
		service.WithAuditPublisher(audit.NewPublisher(auditStore)),
	)
	shell := terminal.New(os.Stdin, os.Stdout, svc,
		terminal.WithLogger(log),
		terminal.WithCurrency(cfg.CurrencySymbol),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		srv := httpserver.New(cfg.MetricsAddr, httptransport.NewRouter(reg))
		log.Info("serving metrics", "addr", cfg.MetricsAddr)
		g.Go(func() error {
			// Metrics are optional; a listener failure must not end the session.
			if err := httpserver.Serve(gctx, srv); err != nil {
				log.Error("metrics listener stopped", "addr", cfg.MetricsAddr, "error", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return shell.Run(gctx)
	})

	// The shell always returns to the menu; errors here are I/O failures,
	// reported without changing the exit status.
	if err := g.Wait(); err != nil {
		log.Error("session ended with error", slog.Any("error", err))
	}
	if err := audit.LogTrail(context.Background(), auditStore, log); err != nil {
		log.Warn("failed to dump audit trail", "error", err)
	}
}
