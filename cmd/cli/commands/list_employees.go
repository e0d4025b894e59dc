package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scattered-vibes/shifterino/pkg/core/services"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(getApp func() *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List the active roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			employees, err := services.ListEmployees(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("listing failed: %w", err)
			}

			fmt.Printf("\n👥 Active Employees (%d)\n\n", len(employees))
			for _, emp := range employees {
				preference := "-"
				if emp.PreferredCategory != "" {
					preference = string(emp.PreferredCategory)
				}
				fmt.Printf("  %-10s %-20s %-11s pattern=%-7s prefers=%-10s cap=%.0fh\n",
					emp.ID, emp.FirstName+" "+emp.LastName, emp.Role, emp.Pattern, preference, emp.WeeklyHoursCap)
			}
			fmt.Println()

			return nil
		},
	}
}
