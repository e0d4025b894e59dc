package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/services"
)

// CheckTimeOffCmd creates the checkTimeOff command
func CheckTimeOffCmd(getApp func() *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkTimeOff",
		Short: "Check a time-off request for colliding shift assignments",
		Long:  "Validate a stored time-off request and list the assignments it collides with. Run before approving a pending request.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			requestID, _ := cmd.Flags().GetString("request")
			app.Logger.Debug("checkTimeOff command", zap.String("request", requestID))

			result, err := services.CheckTimeOff(app.Ctx, app.Database, app.Logger, requestID)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			fmt.Printf("\n🏖  Time-Off Check\n\n")
			fmt.Printf("Request:  %s (%s, %s)\n", result.Request.ID, result.Request.Type, result.Request.Status)
			fmt.Printf("Employee: %s\n", result.Request.EmployeeID)
			fmt.Printf("Range:    %s to %s\n", result.Request.StartDate, result.Request.EndDate)

			if len(result.Check.Errors) > 0 {
				fmt.Printf("Status:   ❌ INVALID REQUEST\n\n")
				for _, msg := range result.Check.Errors {
					fmt.Printf("  • %s\n", msg)
				}
			} else if len(result.Check.Conflicts) > 0 {
				fmt.Printf("Status:   ⚠️  %d CONFLICTING SHIFTS\n\n", len(result.Check.Conflicts))
				for _, conflict := range result.Check.Conflicts {
					fmt.Printf("  • %s (shift %s)\n", conflict.Date, conflict.ShiftID)
				}
			} else {
				fmt.Printf("Status:   ✅ NO CONFLICTS\n")
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("request", "", "Time-off request ID")
	cmd.MarkFlagRequired("request")

	return cmd
}
