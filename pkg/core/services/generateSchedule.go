package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/internal/config"
	"github.com/scattered-vibes/shifterino/pkg/core/model"
	"github.com/scattered-vibes/shifterino/pkg/core/scheduling"
)

// GenerateScheduleStore defines the database operations needed to generate a
// schedule
type GenerateScheduleStore interface {
	ListActiveEmployees(ctx context.Context) ([]model.Employee, error)
	ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error)
	ListStaffingRequirements(ctx context.Context) ([]model.StaffingRequirement, error)
	ListTimeOffRequestsInRange(ctx context.Context, startDate, endDate string) ([]model.TimeOffRequest, error)
	ListShiftsBetween(ctx context.Context, startDate, endDate string) ([]model.IndividualShift, error)
	InsertShifts(ctx context.Context, shifts []model.IndividualShift) error
}

// GenerateScheduleResult contains the generation results
type GenerateScheduleResult struct {
	StartDate string
	EndDate   string

	// ValidationErrors are window problems found before any assignment work;
	// when non-empty, nothing else is populated
	ValidationErrors []string

	ScheduledShifts      []model.IndividualShift
	UnfilledRequirements []scheduling.UnfilledRequirement

	// Persisted is false on dry runs and validation failures
	Persisted bool
}

// GenerateSchedule fetches a snapshot of the roster, catalog, requirements and
// time-off requests, runs the generator over the window, and persists the
// draft unless dryRun is set. Unfilled requirements do not block persistence —
// they are a reportable outcome for an operator to resolve.
func GenerateSchedule(
	ctx context.Context,
	database GenerateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	startDate string,
	endDate string,
	dryRun bool,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting generateSchedule",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.Bool("dry_run", dryRun))

	// Reject bad windows before touching the database
	if errs := scheduling.ValidateGenerationWindow(startDate, endDate); len(errs) > 0 {
		logger.Warn("Invalid generation window", zap.Strings("errors", errs))
		return &GenerateScheduleResult{
			StartDate:        startDate,
			EndDate:          endDate,
			ValidationErrors: errs,
		}, nil
	}

	start, _ := scheduling.ParseDate(startDate)
	end, _ := scheduling.ParseDate(endDate)

	logger.Debug("Fetching roster")
	employees, err := database.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	logger.Debug("Found employees", zap.Int("count", len(employees)))

	if len(employees) == 0 {
		return nil, fmt.Errorf("no active employees found - cannot generate a schedule")
	}

	logger.Debug("Fetching shift catalog")
	options, err := database.ListShiftOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift options: %w", err)
	}
	logger.Debug("Found shift options", zap.Int("count", len(options)))

	logger.Debug("Fetching staffing requirements")
	requirements, err := database.ListStaffingRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staffing requirements: %w", err)
	}
	logger.Debug("Found staffing requirements", zap.Int("count", len(requirements)))

	logger.Debug("Fetching time-off requests")
	timeOff, err := database.ListTimeOffRequestsInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time-off requests: %w", err)
	}
	logger.Debug("Found time-off requests", zap.Int("count", len(timeOff)))

	// Existing shifts are fetched with a lookback so the first window days see
	// rest-period and weekly-hours history
	lookbackStart := start.AddDate(0, 0, -cfg.Generation.LookbackDays).Format(scheduling.DateLayout)
	logger.Debug("Fetching existing shifts", zap.String("from", lookbackStart), zap.String("to", endDate))
	existing, err := database.ListShiftsBetween(ctx, lookbackStart, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shifts: %w", err)
	}
	logger.Debug("Found existing shifts", zap.Int("count", len(existing)))

	holidays, err := cfg.HolidayDates(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
	}
	logger.Debug("Expanded holiday dates", zap.Int("count", len(holidays)))

	outcome, err := scheduling.Generate(scheduling.GenerationConfig{
		StartDate:       startDate,
		EndDate:         endDate,
		Employees:       employees,
		ShiftOptions:    options,
		Requirements:    requirements,
		TimeOffRequests: timeOff,
		ExistingShifts:  existing,
		HolidayDates:    holidays,
		Weights:         scheduling.ScoreWeights(cfg.Generation.Weights),
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generated draft schedule",
		zap.Int("scheduled_shifts", len(outcome.ScheduledShifts)),
		zap.Int("unfilled_requirements", len(outcome.UnfilledRequirements)))

	result := &GenerateScheduleResult{
		StartDate:            startDate,
		EndDate:              endDate,
		ScheduledShifts:      outcome.ScheduledShifts,
		UnfilledRequirements: outcome.UnfilledRequirements,
	}

	if dryRun {
		logger.Info("Dry run - draft not saved")
		return result, nil
	}

	// Generated shifts leave the core without IDs; assign them at the
	// persistence boundary
	for i := range result.ScheduledShifts {
		result.ScheduledShifts[i].ID = uuid.NewString()
	}

	if err := database.InsertShifts(ctx, result.ScheduledShifts); err != nil {
		return nil, fmt.Errorf("failed to save generated shifts: %w", err)
	}

	result.Persisted = true
	logger.Info("Saved draft schedule", zap.Int("shifts", len(result.ScheduledShifts)))

	return result, nil
}
