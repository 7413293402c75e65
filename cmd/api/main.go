package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/remesahq/remesa/internal/config"
	"github.com/remesahq/remesa/internal/corridor"
	"github.com/remesahq/remesa/internal/export"
	remesaHttp "github.com/remesahq/remesa/internal/http"
	corridorHandler "github.com/remesahq/remesa/internal/http/corridor"
	exportHandler "github.com/remesahq/remesa/internal/http/exportcsv"
	importHandler "github.com/remesahq/remesa/internal/http/importcsv"
	remittanceHandler "github.com/remesahq/remesa/internal/http/remittance"
	"github.com/remesahq/remesa/internal/importer"
	"github.com/remesahq/remesa/internal/logging"
	"github.com/remesahq/remesa/internal/metrics"
	"github.com/remesahq/remesa/internal/remittance"
	"github.com/remesahq/remesa/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	st := store.New()
	if cfg.Seed.Demo {
		st.Seed()
		log.Info("seeded demo data")
	}

	var (
		corridorService   = corridor.NewService(st)
		remittanceService = remittance.NewService(st)
		exportService     = export.NewService(remittanceService)
	)

	var (
		corridorH   = corridorHandler.NewHandler(corridorService, remittanceService)
		remittanceH = remittanceHandler.NewHandler(remittanceService)
		importH     = importHandler.NewHandler(importer.NewParser(), corridorService, remittanceService)
		exportH     = exportHandler.NewHandler(exportService)
	)

	router := remesaHttp.New(log, metrics.New("remesa"), cfg.CORS.AllowedOrigins,
		corridorH, remittanceH, importH, exportH)

	srv := remesaHttp.NewServer(log, cfg, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
