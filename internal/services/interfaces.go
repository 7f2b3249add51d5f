package services

import (
	"context"
	"io"
	"time"

	"transaction-importer/internal/models"
)

// ImportServiceInterface runs the CSV import pipeline for a staged file
type ImportServiceInterface interface {
	ImportTransactions(ctx context.Context, relativeFilePath string) (*ImportResult, error)
}

// LedgerServiceInterface exposes read access to imported transactions and categories
type LedgerServiceInterface interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, *models.Balance, error)
	GetBalance(ctx context.Context) (*models.Balance, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// StagingStoreInterface is the filesystem collaborator used by imports
type StagingStoreInterface interface {
	Open(relativeFilePath string) (io.ReadCloser, error)
	Remove(relativeFilePath string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ImportLoggerInterface records structured import events
type ImportLoggerInterface interface {
	LogImportStarted(ctx context.Context, file string)
	LogRowsParsed(ctx context.Context, file string, rowsRead, rowsSkipped int)
	LogCategoriesCreated(ctx context.Context, titles []string)
	LogImportCompleted(ctx context.Context, file string, result *ImportResult, durationMs int64)
	LogImportFailed(ctx context.Context, file, stage string, err error)
	LogCleanupFailed(ctx context.Context, file string, err error)
}
