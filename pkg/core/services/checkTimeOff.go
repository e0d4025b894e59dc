package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
	"github.com/scattered-vibes/shifterino/pkg/core/scheduling"
)

// CheckTimeOffStore defines the database operations needed to check a
// time-off request
type CheckTimeOffStore interface {
	GetTimeOffRequest(ctx context.Context, id string) (*model.TimeOffRequest, error)
	ListShiftsForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.IndividualShift, error)
}

// CheckTimeOffResult contains the check outcome
type CheckTimeOffResult struct {
	Request model.TimeOffRequest
	Check   scheduling.TimeOffCheckResult
}

// CheckTimeOff validates a stored time-off request and reports the
// assignments it collides with. Run before approving a pending request so the
// approver sees any double-booking the approval would create.
func CheckTimeOff(
	ctx context.Context,
	database CheckTimeOffStore,
	logger *zap.Logger,
	requestID string,
) (*CheckTimeOffResult, error) {
	logger.Debug("Starting checkTimeOff", zap.String("request_id", requestID))

	request, err := database.GetTimeOffRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time-off request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("time-off request %s not found", requestID)
	}

	result := &CheckTimeOffResult{Request: *request}

	if errs := scheduling.ValidateTimeOffRequest(*request); len(errs) > 0 {
		result.Check = scheduling.TimeOffCheckResult{Errors: errs, Conflicts: []scheduling.TimeOffConflict{}}
		logger.Warn("Time-off request failed validation", zap.Strings("errors", errs))
		return result, nil
	}

	assignments, err := database.ListShiftsForEmployee(ctx, request.EmployeeID, request.StartDate, request.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee shifts: %w", err)
	}

	result.Check = scheduling.CheckTimeOff(*request, assignments)
	logger.Info("Checked time-off request",
		zap.String("request_id", requestID),
		zap.Int("conflicts", len(result.Check.Conflicts)))

	return result, nil
}
