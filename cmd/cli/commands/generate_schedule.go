package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(getApp func() *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Generate a draft schedule for a date range",
		Long:  "Run the schedule generator over a date range, assigning employees to shift options to satisfy staffing requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			startDate, _ := cmd.Flags().GetString("start")
			endDate, _ := cmd.Flags().GetString("end")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("generateSchedule command",
				zap.String("start", startDate),
				zap.String("end", endDate),
				zap.Bool("dry_run", dryRun))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, startDate, endDate, dryRun)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\n🗓  Schedule Generation Results\n\n")
			fmt.Printf("Window:      %s to %s\n", result.StartDate, result.EndDate)

			if len(result.ValidationErrors) > 0 {
				fmt.Printf("Status:      ❌ REJECTED\n\n")
				for _, msg := range result.ValidationErrors {
					fmt.Printf("  • %s\n", msg)
				}
				fmt.Println()
				return nil
			}

			fmt.Printf("Shifts:      %d\n", len(result.ScheduledShifts))
			if dryRun {
				fmt.Printf("Mode:        🧪 DRY RUN (not saved)\n")
			} else if result.Persisted {
				fmt.Printf("Status:      ✅ SAVED (draft)\n")
			}
			fmt.Println()

			if len(result.UnfilledRequirements) > 0 {
				fmt.Printf("⚠️  Unfilled Requirements (%d):\n", len(result.UnfilledRequirements))
				for _, unfilled := range result.UnfilledRequirements {
					line := fmt.Sprintf("  • %s - requirement %s: short %d", unfilled.Date, unfilled.RequirementID, unfilled.Shortfall)
					if unfilled.MissingSupervisor {
						line += " (no supervisor)"
					}
					fmt.Println(line)
				}
				fmt.Println()
			}

			fmt.Printf("📅 Assignments:\n\n")
			for _, shift := range result.ScheduledShifts {
				fmt.Printf("  %s  employee=%s  option=%s\n", shift.Date, shift.EmployeeID, shift.ShiftOptionID)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Bool("dry-run", false, "Generate without saving")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
