package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"transaction-importer/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return fmt.Errorf("starting: %w", err)
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.config, server.Dependencies{
				ImportService: a.importService,
				LedgerService: a.ledgerService,
				Uploads:       a.store,
				Health:        a.db,
				Logger:        a.logger,
			})
			return srv.Run(ctx)
		},
	}
}
