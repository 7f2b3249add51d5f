package commands

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"transaction-importer/internal/config"
	"transaction-importer/internal/database"
)

func newMigrateCommand() *cobra.Command {
	var migrationsPath string
	var seedsPath string
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := openMigrationRunner(migrationsPath, seedsPath)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := runner.WaitForDatabase(cmd.Context()); err != nil {
				return fmt.Errorf("waiting for database: %w", err)
			}
			if err := runner.Up(); err != nil {
				return err
			}
			if !seed {
				return nil
			}

			applied, err := runner.ApplySeeds(cmd.Context())
			if err != nil {
				return fmt.Errorf("applying seeds: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d seed files\n", applied)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&migrationsPath, "migrations", "db/migrations", "migrations directory")
	cmd.PersistentFlags().StringVar(&seedsPath, "seeds", "db/seeds", "seed files directory")
	cmd.Flags().BoolVar(&seed, "seed", false, "load seed data after migrating")

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, closeDB, err := openMigrationRunner(migrationsPath, seedsPath)
			if err != nil {
				return err
			}
			defer closeDB()

			status, err := runner.Status()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", status.Version, status.Dirty)
			return nil
		},
	})

	return cmd
}

func openMigrationRunner(migrationsPath, seedsPath string) (*database.MigrationRunner, func(), error) {
	cfg := config.Load()
	logger := cfg.Log.NewLogger(os.Stderr)

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB,
		database.WithMigrationsPath(migrationsPath),
		database.WithSeedsPath(seedsPath),
		database.WithLogger(logger),
	)

	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}
	return runner, closeDB, nil
}
