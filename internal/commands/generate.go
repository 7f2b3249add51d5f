package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"transaction-importer/internal/config"
	"transaction-importer/internal/services"
	"transaction-importer/internal/staging"
)

func newGenerateCommand() *cobra.Command {
	cfg := services.DefaultSampleGeneratorConfig()
	var stage bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample import CSV",
		Long:  "Generate a sample import CSV on stdout, or into the staging directory with --stage.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := services.NewSampleGenerator(cfg)
			if !stage {
				return generator.WriteCSV(cmd.OutOrStdout())
			}

			var buf bytes.Buffer
			if err := generator.WriteCSV(&buf); err != nil {
				return err
			}

			store := staging.NewStore(config.Load().Import.StagingDir)
			relativePath, err := store.Save("sample.csv", &buf)
			if err != nil {
				return fmt.Errorf("staging sample: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), relativePath)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows to generate")
	cmd.Flags().Float64Var(&cfg.IncomeRatio, "income-ratio", cfg.IncomeRatio, "share of income rows")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one")
	cmd.Flags().BoolVar(&stage, "stage", false, "write into the staging directory and print its relative path")

	return cmd
}
