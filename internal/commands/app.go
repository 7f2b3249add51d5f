package commands

import (
	"log/slog"
	"os"

	"transaction-importer/internal/config"
	"transaction-importer/internal/database"
	"transaction-importer/internal/repositories"
	"transaction-importer/internal/services"
	"transaction-importer/internal/staging"
)

// app holds the collaborators shared by the serve and import commands
type app struct {
	config        *config.Config
	logger        *slog.Logger
	db            *database.DB
	store         *staging.Store
	importService services.ImportServiceInterface
	ledgerService services.LedgerServiceInterface
}

func newApp(cfg *config.Config, db *database.DB, logger *slog.Logger) *app {
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	store := staging.NewStore(cfg.Import.StagingDir)
	metrics := services.NewPrometheusMetrics()

	return &app{
		config: cfg,
		logger: logger,
		db:     db,
		store:  store,
		importService: services.NewImportService(
			categoryRepo,
			transactionRepo,
			store,
			services.NewImportLogger(logger),
			metrics,
			services.DefaultCSVParserConfig(),
		),
		ledgerService: services.NewLedgerService(transactionRepo, categoryRepo, metrics),
	}
}

func openApp() (*app, error) {
	cfg := config.Load()
	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, db, logger), nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", slog.String("error", err.Error()))
	}
}
