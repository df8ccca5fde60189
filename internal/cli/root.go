package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hometrack/hometrack-api/internal/config"
	"github.com/hometrack/hometrack-api/internal/database"
	"github.com/hometrack/hometrack-api/internal/repository"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
}

// NewRootCommand creates the root command. Without a subcommand it serves
// the API.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	serve := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:           "hometrack",
		Short:         "Home Track household management API",
		Long:          "Home Track tracks household inventory, tasks, expenses and shopping lists.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile != "" {
				return os.Setenv(config.ConfigFileEnv, opts.ConfigFile)
			}
			return nil
		},
		RunE: serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a YAML config file (overrides $"+config.ConfigFileEnv+")")
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore connects the configured backend and optionally migrates it. The
// returned func releases the connection.
func openStore(ctx context.Context, cfg *config.Config, migrate bool) (*repository.Store, func(), error) {
	if cfg.DBDriver == config.DriverMongo {
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				slog.Warn("Failed to disconnect from MongoDB", "error", err)
			}
		}
		if migrate {
			if err := database.MigrateMongo(ctx, db); err != nil {
				closeFn()
				return nil, nil, err
			}
		}
		return repository.NewMongoStore(db), closeFn, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if migrate {
		if err := database.MigrateDatabase(db); err != nil {
			closeFn()
			return nil, nil, err
		}
	}
	return repository.NewGormStore(db), closeFn, nil
}
