package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/internal/config"
	"github.com/scattered-vibes/shifterino/pkg/core/model"
	"github.com/scattered-vibes/shifterino/pkg/core/scheduling"
)

// ValidateScheduleStore defines the database operations needed to validate a
// schedule
type ValidateScheduleStore interface {
	ListActiveEmployees(ctx context.Context) ([]model.Employee, error)
	ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error)
	ListStaffingRequirements(ctx context.Context) ([]model.StaffingRequirement, error)
	ListShiftsBetween(ctx context.Context, startDate, endDate string) ([]model.IndividualShift, error)
}

// DateStaffingReport pairs a date with its staffing verdict.
type DateStaffingReport struct {
	Date   string
	Report scheduling.StaffingReport
}

// ValidateScheduleResult contains the validation results
type ValidateScheduleResult struct {
	StartDate string
	EndDate   string
	IsValid   bool

	StaffingReports []DateStaffingReport

	// PatternViolations are per-employee weekly pattern problems
	PatternViolations []model.ScheduleConflict
}

// ValidateSchedule checks the persisted schedule for a date range: staffing
// coverage per date, and each employee's weekly shift sets against their
// pattern. It only reports; nothing is mutated.
func ValidateSchedule(
	ctx context.Context,
	database ValidateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	startDate string,
	endDate string,
) (*ValidateScheduleResult, error) {
	logger.Debug("Starting validateSchedule",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate))

	start, err := scheduling.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := scheduling.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	employees, err := database.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	catalog, err := database.ListShiftOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift options: %w", err)
	}
	requirements, err := database.ListStaffingRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staffing requirements: %w", err)
	}
	shifts, err := database.ListShiftsBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	options := scheduling.OptionsByID(catalog)
	employeesByID := make(map[string]model.Employee, len(employees))
	for _, emp := range employees {
		employeesByID[emp.ID] = emp
	}

	holidays, err := cfg.HolidayDates(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
	}

	shiftsByDate := make(map[string][]model.IndividualShift)
	for _, shift := range shifts {
		shiftsByDate[shift.Date] = append(shiftsByDate[shift.Date], shift)
	}

	result := &ValidateScheduleResult{
		StartDate:         startDate,
		EndDate:           endDate,
		IsValid:           true,
		StaffingReports:   []DateStaffingReport{},
		PatternViolations: []model.ScheduleConflict{},
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(scheduling.DateLayout)
		applicable := scheduling.ApplicableRequirements(requirements, holidays[dateStr])

		report, err := scheduling.EvaluateStaffing(dateStr, applicable, shiftsByDate[dateStr], options, employeesByID)
		if err != nil {
			return nil, fmt.Errorf("staffing evaluation failed for %s: %w", dateStr, err)
		}

		result.StaffingReports = append(result.StaffingReports, DateStaffingReport{Date: dateStr, Report: report})
		if !report.IsValid {
			result.IsValid = false
		}
	}

	result.PatternViolations = validatePatterns(employeesByID, shifts, options)
	if len(result.PatternViolations) > 0 {
		result.IsValid = false
	}

	logger.Info("Validated schedule",
		zap.Bool("is_valid", result.IsValid),
		zap.Int("pattern_violations", len(result.PatternViolations)))

	return result, nil
}

// validatePatterns groups each employee's shifts by calendar week and checks
// every complete week against the employee's pattern. Weeks that are only
// partially inside the validated range are skipped — validating a truncated
// week would report spurious count violations.
func validatePatterns(employees map[string]model.Employee, shifts []model.IndividualShift, options map[string]model.ShiftOption) []model.ScheduleConflict {
	type weekKey struct {
		employeeID string
		weekStart  string
	}

	weeks := make(map[weekKey][]model.IndividualShift)
	var minDate, maxDate string
	for _, shift := range shifts {
		if shift.Status == model.StatusCancelled {
			continue
		}
		day, err := scheduling.ParseDate(shift.Date)
		if err != nil {
			continue
		}
		if minDate == "" || shift.Date < minDate {
			minDate = shift.Date
		}
		if shift.Date > maxDate {
			maxDate = shift.Date
		}
		key := weekKey{
			employeeID: shift.EmployeeID,
			weekStart:  scheduling.WeekStart(day).Format(scheduling.DateLayout),
		}
		weeks[key] = append(weeks[key], shift)
	}

	keys := make([]weekKey, 0, len(weeks))
	for key := range weeks {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].weekStart != keys[j].weekStart {
			return keys[i].weekStart < keys[j].weekStart
		}
		return keys[i].employeeID < keys[j].employeeID
	})

	var violations []model.ScheduleConflict
	for _, key := range keys {
		emp, ok := employees[key.employeeID]
		if !ok {
			continue
		}

		weekStart, _ := scheduling.ParseDate(key.weekStart)
		weekEnd := weekStart.AddDate(0, 0, 6).Format(scheduling.DateLayout)
		if key.weekStart < minDate || weekEnd > maxDate {
			continue
		}

		validation := scheduling.ValidatePattern(emp.Pattern, weeks[key], options)
		for _, msg := range validation.Errors {
			violations = append(violations, model.ScheduleConflict{
				Type:       model.ConflictPatternViolation,
				EmployeeID: emp.ID,
				Date:       key.weekStart,
				Message:    msg,
			})
		}
	}

	return violations
}
