package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/planhub/internal/cli"
	"github.com/alexanderramin/planhub/internal/config"
	"github.com/alexanderramin/planhub/internal/db"
	"github.com/alexanderramin/planhub/internal/logging"
	"github.com/alexanderramin/planhub/internal/repository"
	"github.com/alexanderramin/planhub/internal/service"
	"github.com/alexanderramin/planhub/internal/upload"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// planhub.yaml lives in PLANHUB_CONFIG_DIR, or ~/.planhub by default.
	configDir := os.Getenv("PLANHUB_CONFIG_DIR")
	if configDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configDir = filepath.Join(home, ".planhub")
		}
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.Catalog.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	observer := service.NewZapUseCaseObserver(logger)
	uploader := upload.NewSimulatedUploader(cfg.Upload.Delay, func(f upload.File) {
		logger.Debug("file uploaded", zap.String("name", f.Name), zap.Int64("size", f.Size))
	})

	app := &cli.App{
		Catalog:          service.NewCatalogService(repository.NewSQLitePlanRepo(database), observer),
		Submitter:        service.NewPlanSubmitter(cfg.Submit.Delay, observer),
		Uploads:          service.NewUploadService(uploader, observer),
		UploadResetAfter: cfg.Upload.ResetAfter,
		Logger:           logger,
	}

	// Only a real terminal gets the TUI; pipes get plain text.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	logger.Info("planhub starting", zap.String("catalog", cfg.Catalog.DSN))
	return cli.NewRootCmd(app).Execute()
}
