package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
	"github.com/scattered-vibes/shifterino/pkg/core/scheduling"
)

// AssignShiftStore defines the database operations needed for a manual
// assignment
type AssignShiftStore interface {
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	GetShiftOption(ctx context.Context, id string) (*model.ShiftOption, error)
	ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error)
	ListShiftsForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.IndividualShift, error)
	InsertShifts(ctx context.Context, shifts []model.IndividualShift) error
}

// AssignShiftInput is one proposed manual assignment.
type AssignShiftInput struct {
	// ActorID identifies who is making the assignment; overrides require a
	// manager actor
	ActorID string

	EmployeeID    string
	ShiftOptionID string
	Date          string

	// Override requests proceeding past soft conflicts. Hard conflicts are
	// never overridable.
	Override bool
}

// AssignShiftResult contains the assignment outcome
type AssignShiftResult struct {
	Report   scheduling.ConflictReport
	Assigned bool
	Shift    *model.IndividualShift
}

// AssignShift runs the conflict detector for a proposed assignment and
// persists it when permitted. Soft-conflicted assignments go through only with
// an explicit override from a manager-ranked actor, and are flagged as
// overtime when the weekly-hours overage is what triggered the override.
func AssignShift(
	ctx context.Context,
	database AssignShiftStore,
	logger *zap.Logger,
	input AssignShiftInput,
) (*AssignShiftResult, error) {
	logger.Debug("Starting assignShift",
		zap.String("employee_id", input.EmployeeID),
		zap.String("shift_option_id", input.ShiftOptionID),
		zap.String("date", input.Date),
		zap.Bool("override", input.Override))

	day, err := scheduling.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	employee, err := database.GetEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("employee %s not found", input.EmployeeID)
	}

	option, err := database.GetShiftOption(ctx, input.ShiftOptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift option: %w", err)
	}
	if option == nil {
		return nil, fmt.Errorf("shift option %s not found", input.ShiftOptionID)
	}

	catalog, err := database.ListShiftOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift catalog: %w", err)
	}
	options := scheduling.OptionsByID(catalog)

	// A week either side of the date covers every shift the rest and weekly
	// hours checks can see
	windowStart := day.AddDate(0, 0, -7).Format(scheduling.DateLayout)
	windowEnd := day.AddDate(0, 0, 7).Format(scheduling.DateLayout)
	existing, err := database.ListShiftsForEmployee(ctx, input.EmployeeID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee shifts: %w", err)
	}

	candidate, err := scheduling.NewShiftCandidate(input.EmployeeID, *option, input.Date)
	if err != nil {
		return nil, err
	}

	report, err := scheduling.DetectConflicts(*employee, candidate, existing, options)
	if err != nil {
		return nil, fmt.Errorf("conflict detection failed: %w", err)
	}

	result := &AssignShiftResult{Report: report}

	isOvertime := false
	switch {
	case report.CanProceed:
		// No conflicts - proceed unconditionally
	case report.RequiresOverride:
		if !input.Override {
			logger.Info("Assignment requires an override", zap.String("message", report.Message))
			return result, nil
		}

		actor, err := database.GetEmployee(ctx, input.ActorID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch acting employee: %w", err)
		}
		if actor == nil {
			return nil, fmt.Errorf("acting employee %s not found", input.ActorID)
		}
		if !actor.Role.AtLeast(model.RoleManager) {
			logger.Warn("Override denied - actor is not a manager",
				zap.String("actor_id", actor.ID),
				zap.String("actor_role", string(actor.Role)))
			return result, nil
		}

		for _, conflict := range report.Conflicts {
			if conflict.Type == model.ConflictHoursExceeded {
				isOvertime = true
			}
		}
		logger.Info("Manager override applied",
			zap.String("actor_id", actor.ID),
			zap.String("message", report.Message))
	default:
		// Hard conflict - rejected outright, no override possible
		logger.Info("Assignment rejected", zap.String("message", report.Message))
		return result, nil
	}

	shift := model.IndividualShift{
		ID:            uuid.NewString(),
		EmployeeID:    input.EmployeeID,
		ShiftOptionID: input.ShiftOptionID,
		Date:          input.Date,
		Status:        model.StatusScheduled,
		IsOvertime:    isOvertime,
	}

	if err := database.InsertShifts(ctx, []model.IndividualShift{shift}); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	result.Assigned = true
	result.Shift = &shift
	logger.Info("Assignment saved", zap.String("shift_id", shift.ID))

	return result, nil
}
