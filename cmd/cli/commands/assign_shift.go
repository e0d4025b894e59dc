package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/services"
)

// AssignShiftCmd creates the assignShift command
func AssignShiftCmd(getApp func() *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignShift",
		Short: "Manually assign an employee to a shift option on a date",
		Long:  "Check a proposed assignment for conflicts and save it. Soft conflicts need --override and a manager actor; hard conflicts are always rejected.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			employeeID, _ := cmd.Flags().GetString("employee")
			optionID, _ := cmd.Flags().GetString("option")
			date, _ := cmd.Flags().GetString("date")
			actorID, _ := cmd.Flags().GetString("actor")
			override, _ := cmd.Flags().GetBool("override")

			app.Logger.Debug("assignShift command",
				zap.String("employee", employeeID),
				zap.String("option", optionID),
				zap.String("date", date),
				zap.Bool("override", override))

			result, err := services.AssignShift(app.Ctx, app.Database, app.Logger, services.AssignShiftInput{
				ActorID:       actorID,
				EmployeeID:    employeeID,
				ShiftOptionID: optionID,
				Date:          date,
				Override:      override,
			})
			if err != nil {
				return fmt.Errorf("assignment failed: %w", err)
			}

			fmt.Printf("\n📌 Shift Assignment\n\n")
			switch {
			case result.Assigned:
				fmt.Printf("Status:  ✅ SAVED (shift %s)\n", result.Shift.ID)
				if result.Shift.IsOvertime {
					fmt.Printf("Note:    flagged as overtime\n")
				}
			case result.Report.RequiresOverride:
				fmt.Printf("Status:  ⚠️  REQUIRES OVERRIDE\n")
			default:
				fmt.Printf("Status:  ❌ REJECTED\n")
			}
			fmt.Printf("Detail:  %s\n", result.Report.Message)

			if len(result.Report.Conflicts) > 0 {
				fmt.Printf("\nConflicts:\n")
				for _, conflict := range result.Report.Conflicts {
					fmt.Printf("  • [%s] %s\n", conflict.Type, conflict.Message)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("employee", "", "Employee ID")
	cmd.Flags().String("option", "", "Shift option ID")
	cmd.Flags().String("date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().String("actor", "", "Acting employee ID (required for --override)")
	cmd.Flags().Bool("override", false, "Proceed past soft conflicts (manager actors only)")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("option")
	cmd.MarkFlagRequired("date")

	return cmd
}
