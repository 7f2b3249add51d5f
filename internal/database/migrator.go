package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var ErrMigrationsDirNotFound = errors.New("migrations directory not found")

// MigrationStatus describes the schema version recorded by golang-migrate
type MigrationStatus struct {
	Version uint
	Dirty   bool
}

// MigrationRunner applies SQL migrations and seed files to a database/sql handle
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	maxAttempts    int
	retryInterval  time.Duration
	logger         *slog.Logger
}

type MigrationOption func(*MigrationRunner)

func WithMigrationsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = path
	}
}

func WithSeedsPath(path string) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.seedsPath = path
	}
}

// WithReadinessPolicy sets how many pings WaitForDatabase attempts and the pause between them
func WithReadinessPolicy(attempts int, interval time.Duration) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.maxAttempts = attempts
		mr.retryInterval = interval
	}
}

func WithLogger(logger *slog.Logger) MigrationOption {
	return func(mr *MigrationRunner) {
		mr.logger = logger
	}
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, opts ...MigrationOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		maxAttempts:    30,
		retryInterval:  2 * time.Second,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx is done
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	mr.logger.Info("waiting for database")

	for attempt := 1; attempt <= mr.maxAttempts; attempt++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			mr.logger.Info("database is ready", slog.Int("attempt", attempt))
			return nil
		}

		mr.logger.Warn("database not ready",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", mr.maxAttempts),
			slog.String("error", err.Error()),
		)

		if attempt == mr.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", mr.maxAttempts)
}

// Up applies every pending migration. A missing migrations directory is not an error.
func (mr *MigrationRunner) Up() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsDirNotFound) {
		mr.logger.Info("migrations directory not found, skipping", slog.String("path", mr.migrationsPath))
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("no new migrations to apply", slog.Uint64("version", uint64(version)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("applied migrations", slog.Uint64("version", uint64(newVersion)))

	return nil
}

// Status returns the current migration version
func (mr *MigrationRunner) Status() (*MigrationStatus, error) {
	m, err := mr.newMigrate()
	if err != nil {
		return nil, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	return &MigrationStatus{Version: version, Dirty: dirty}, nil
}

// ApplySeeds executes every *.sql file of the seeds directory in name order and
// returns how many succeeded. A failing file is logged and skipped.
func (mr *MigrationRunner) ApplySeeds(ctx context.Context) (int, error) {
	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		mr.logger.Info("seeds directory not found, skipping", slog.String("path", mr.seedsPath))
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to find seed files: %w", err)
	}
	sort.Strings(files)

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			mr.logger.Warn("seed file failed",
				slog.String("file", filepath.Base(file)),
				slog.String("error", err.Error()),
			)
			continue
		}

		applied++
		mr.logger.Info("seed file applied", slog.String("file", filepath.Base(file)))
	}

	return applied, nil
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsDirNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrationsIfEnabled runs migrations and seeds when AUTO_MIGRATE is true
func RunMigrationsIfEnabled(db *sql.DB, opts ...MigrationOption) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return nil
	}

	runner := NewMigrationRunner(db, opts...)
	ctx := context.Background()

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if os.Getenv("SEED_DATABASE") == "true" {
		if _, err := runner.ApplySeeds(ctx); err != nil {
			runner.logger.Warn("seed data loading failed", slog.String("error", err.Error()))
		}
	}

	return nil
}
