package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-importer/internal/models"
	"transaction-importer/internal/repositories"
)

// ErrUnreadableImportFile marks failures to read or decode the staged file
var ErrUnreadableImportFile = errors.New("import file could not be read")

// Import pipeline stages, used in logs and metrics
const (
	StageOpen        = "open"
	StageParse       = "parse"
	StageReconcile   = "reconcile"
	StageMaterialize = "materialize"
	StagePersist     = "persist"
)

// ImportResult describes one completed import
type ImportResult struct {
	Transactions      []models.Transaction
	RowsRead          int
	RowsSkipped       int
	CategoriesCreated int
	CategoriesReused  int
	// CleanupErr is set when the source file could not be removed after a
	// successful import. The import itself is still committed.
	CleanupErr error
}

// importService implements ImportServiceInterface
type importService struct {
	parser          *CSVParser
	reconciler      *CategoryReconciler
	transactionRepo repositories.TransactionRepositoryInterface
	store           StagingStoreInterface
	logger          ImportLoggerInterface
	metrics         MetricsRecorderInterface
}

// NewImportService creates a new import service
func NewImportService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	store StagingStoreInterface,
	logger ImportLoggerInterface,
	metrics MetricsRecorderInterface,
	parserConfig CSVParserConfig,
) ImportServiceInterface {
	return &importService{
		parser:          NewCSVParser(parserConfig),
		reconciler:      NewCategoryReconciler(categoryRepo),
		transactionRepo: transactionRepo,
		store:           store,
		logger:          logger,
		metrics:         metrics,
	}
}

// ImportTransactions imports every valid row of the staged file. Stages run strictly
// in sequence; the file is removed only after the transactions are committed.
func (s *importService) ImportTransactions(ctx context.Context, relativeFilePath string) (*ImportResult, error) {
	start := time.Now()
	s.logger.LogImportStarted(ctx, relativeFilePath)

	parsed, stage, err := s.readRows(ctx, relativeFilePath)
	if err != nil {
		return nil, s.fail(ctx, relativeFilePath, stage, err)
	}
	s.logger.LogRowsParsed(ctx, relativeFilePath, len(parsed.Rows)+parsed.Skipped, parsed.Skipped)

	resolution, err := s.reconciler.Reconcile(ctx, parsed.Labels)
	if err != nil {
		return nil, s.fail(ctx, relativeFilePath, StageReconcile, err)
	}
	if len(resolution.Created) > 0 {
		titles := make([]string, len(resolution.Created))
		for i := range resolution.Created {
			titles[i] = resolution.Created[i].Title
		}
		s.logger.LogCategoriesCreated(ctx, titles)
	}

	transactions, err := MaterializeTransactions(parsed.Rows, resolution)
	if err != nil {
		return nil, s.fail(ctx, relativeFilePath, StageMaterialize, err)
	}

	if len(transactions) > 0 {
		transactions, err = s.transactionRepo.CreateBatch(ctx, transactions)
		if err != nil {
			return nil, s.fail(ctx, relativeFilePath, StagePersist, fmt.Errorf("failed to save transactions: %w", err))
		}
	}

	result := &ImportResult{
		Transactions:      transactions,
		RowsRead:          len(parsed.Rows) + parsed.Skipped,
		RowsSkipped:       parsed.Skipped,
		CategoriesCreated: len(resolution.Created),
		CategoriesReused:  len(resolution.Existing),
	}

	if err := s.store.Remove(relativeFilePath); err != nil {
		result.CleanupErr = err
		s.logger.LogCleanupFailed(ctx, relativeFilePath, err)
		s.metrics.IncrementCounter("import.cleanup.failed", nil)
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("import.completed", nil)
	s.metrics.RecordProcessingTime("import.duration", duration)
	s.metrics.RecordGauge("import.rows", float64(len(transactions)), map[string]string{"outcome": "imported"})
	s.metrics.RecordGauge("import.rows", float64(parsed.Skipped), map[string]string{"outcome": "skipped"})
	s.metrics.RecordGauge("import.categories.created", float64(result.CategoriesCreated), nil)
	s.logger.LogImportCompleted(ctx, relativeFilePath, result, duration.Milliseconds())

	return result, nil
}

// readRows opens the staged file and drains it through the parser. On failure it
// also reports the stage that failed.
func (s *importService) readRows(ctx context.Context, relativeFilePath string) (*ParsedRows, string, error) {
	file, err := s.store.Open(relativeFilePath)
	if err != nil {
		return nil, StageOpen, err
	}
	defer file.Close()

	parsed, err := s.parser.Parse(ctx, file)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, StageParse, err
		}
		return nil, StageParse, fmt.Errorf("%w: %w", ErrUnreadableImportFile, err)
	}

	return parsed, "", nil
}

func (s *importService) fail(ctx context.Context, file, stage string, err error) error {
	s.logger.LogImportFailed(ctx, file, stage, err)
	s.metrics.IncrementCounter("import.failed", map[string]string{"stage": stage})
	return err
}
