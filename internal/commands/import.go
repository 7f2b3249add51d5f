package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"transaction-importer/internal/dto"
	"transaction-importer/internal/services"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import a CSV file from the staging directory",
		Long:  "Import a CSV file from the staging directory. The path is relative to STAGING_DIR and the file is removed once its transactions are stored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return fmt.Errorf("starting: %w", err)
			}
			defer a.Close()

			return runImport(cmd, a.importService, args[0])
		},
	}

	return cmd
}

func runImport(cmd *cobra.Command, importService services.ImportServiceInterface, path string) error {
	ctx := services.WithCorrelationID(cmd.Context(), uuid.NewString())

	result, err := importService.ImportTransactions(ctx, path)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	return writeJSON(cmd.OutOrStdout(), dto.NewImportResponse(result).Summary)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
