package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/cmd/cli/commands"
	"github.com/scattered-vibes/shifterino/internal/config"
	"github.com/scattered-vibes/shifterino/pkg/postgres"
	"github.com/scattered-vibes/shifterino/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	database *postgres.DB
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env        string
	configPath string
	verbose    bool
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shifterino",
		Short: "Shifterino CLI - Manage dispatch-center shift schedules",
		Long:  `A CLI tool for generating, validating and adjusting dispatch-center shift schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.logger != nil {
					app.logger.Sync()
				}
				if app.database != nil {
					app.database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: shifterino_config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Dependencies are wired in PersistentPreRunE, so commands resolve the
	// context lazily inside their RunE
	appCtx := func() *commands.AppContext {
		return &commands.AppContext{
			Cfg:      app.cfg,
			Database: app.database,
			Migrator: app.database,
			Logger:   app.logger,
			Ctx:      app.ctx,
		}
	}

	rootCmd.AddCommand(
		commands.MigrateCmd(appCtx),
		commands.GenerateScheduleCmd(appCtx),
		commands.ValidateScheduleCmd(appCtx),
		commands.AssignShiftCmd(appCtx),
		commands.CheckTimeOffCmd(appCtx),
		commands.ListEmployeesCmd(appCtx),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initApp() error {
	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app = &App{cfg: cfg, database: database, logger: logger, ctx: ctx}
	return nil
}
