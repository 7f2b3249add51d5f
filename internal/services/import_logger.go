package services

import (
	"context"
	"log/slog"
	"time"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the id attached to import log events
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// ImportLogger writes structured events for the import pipeline
type ImportLogger struct {
	logger *slog.Logger
}

// NewImportLogger creates a new import logger
func NewImportLogger(logger *slog.Logger) ImportLoggerInterface {
	return &ImportLogger{
		logger: logger,
	}
}

func (il *ImportLogger) LogImportStarted(ctx context.Context, file string) {
	il.logger.InfoContext(ctx, "import started",
		slog.String("event_type", "import_started"),
		slog.String("file", file),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogRowsParsed(ctx context.Context, file string, rowsRead, rowsSkipped int) {
	il.logger.DebugContext(ctx, "import rows parsed",
		slog.String("event_type", "import_rows_parsed"),
		slog.String("file", file),
		slog.Int("rows_read", rowsRead),
		slog.Int("rows_skipped", rowsSkipped),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogCategoriesCreated(ctx context.Context, titles []string) {
	il.logger.InfoContext(ctx, "import categories created",
		slog.String("event_type", "import_categories_created"),
		slog.Int("count", len(titles)),
		slog.Any("titles", titles),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportCompleted(ctx context.Context, file string, result *ImportResult, durationMs int64) {
	il.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("file", file),
		slog.Int("transactions", len(result.Transactions)),
		slog.Int("rows_read", result.RowsRead),
		slog.Int("rows_skipped", result.RowsSkipped),
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_reused", result.CategoriesReused),
		slog.Bool("file_removed", result.CleanupErr == nil),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogImportFailed(ctx context.Context, file, stage string, err error) {
	il.logger.ErrorContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("file", file),
		slog.String("stage", stage),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (il *ImportLogger) LogCleanupFailed(ctx context.Context, file string, err error) {
	il.logger.WarnContext(ctx, "import file cleanup failed",
		slog.String("event_type", "import_cleanup_failed"),
		slog.String("file", file),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
