package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/services"
)

// ValidateScheduleCmd creates the validateSchedule command
func ValidateScheduleCmd(getApp func() *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateSchedule",
		Short: "Validate the persisted schedule for a date range",
		Long:  "Check staffing coverage and per-employee shift patterns for the schedule stored in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			startDate, _ := cmd.Flags().GetString("start")
			endDate, _ := cmd.Flags().GetString("end")

			app.Logger.Debug("validateSchedule command",
				zap.String("start", startDate),
				zap.String("end", endDate))

			result, err := services.ValidateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, startDate, endDate)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Printf("\n🔍 Schedule Validation Results\n\n")
			fmt.Printf("Window:  %s to %s\n", result.StartDate, result.EndDate)
			if result.IsValid {
				fmt.Printf("Status:  ✅ VALID\n\n")
			} else {
				fmt.Printf("Status:  ❌ INVALID\n\n")
			}

			for _, dateReport := range result.StaffingReports {
				if dateReport.Report.IsValid {
					continue
				}
				fmt.Printf("  %s:\n", dateReport.Date)
				for _, msg := range dateReport.Report.Errors {
					fmt.Printf("    • %s\n", msg)
				}
			}

			if len(result.PatternViolations) > 0 {
				fmt.Printf("\n⚠️  Pattern Violations (%d):\n", len(result.PatternViolations))
				for _, violation := range result.PatternViolations {
					fmt.Printf("  • employee %s, week of %s: %s\n", violation.EmployeeID, violation.Date, violation.Message)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
