package cli

import (
	"fmt"

	"github.com/hometrack/hometrack-api/pkg/logging"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.LogLevel)

			_, closeStore, err := openStore(cmd.Context(), cfg, true)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer closeStore()

			logger.Info("Migrations completed", "driver", cfg.DBDriver)
			return nil
		},
	}
}
