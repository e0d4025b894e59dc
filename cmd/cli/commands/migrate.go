package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates the migrate command
func MigrateCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			if err := app.Migrator.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("migrations failed: %w", err)
			}

			fmt.Println("✅ Migrations applied")
			return nil
		},
	}
}
