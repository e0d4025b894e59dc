package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// GetShiftOption retrieves one shift option by ID. Returns nil when no row
// matches.
func (d *DB) GetShiftOption(ctx context.Context, id string) (*model.ShiftOption, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, name, start_time, end_time, duration_hours, category, requires_supervisor
		FROM shift_option
		WHERE id = $1
	`, id)

	var option model.ShiftOption
	err := row.Scan(&option.ID, &option.Name, &option.StartTime, &option.EndTime,
		&option.DurationHours, &option.Category, &option.RequiresSupervisor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query shift option: %w", err)
	}
	return &option, nil
}

// ListShiftOptions retrieves the full shift catalog ordered by start time.
func (d *DB) ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, start_time, end_time, duration_hours, category, requires_supervisor
		FROM shift_option
		ORDER BY start_time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift options: %w", err)
	}
	defer rows.Close()

	var options []model.ShiftOption
	for rows.Next() {
		var option model.ShiftOption
		if err := rows.Scan(&option.ID, &option.Name, &option.StartTime, &option.EndTime,
			&option.DurationHours, &option.Category, &option.RequiresSupervisor); err != nil {
			return nil, fmt.Errorf("failed to scan shift option: %w", err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift options: %w", err)
	}

	return options, nil
}

// ListStaffingRequirements retrieves all staffing requirement windows.
func (d *DB) ListStaffingRequirements(ctx context.Context) ([]model.StaffingRequirement, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, time_block_start, time_block_end, min_total_staff, min_supervisors, is_holiday
		FROM staffing_requirement
		ORDER BY time_block_start, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staffing requirements: %w", err)
	}
	defer rows.Close()

	var requirements []model.StaffingRequirement
	for rows.Next() {
		var req model.StaffingRequirement
		if err := rows.Scan(&req.ID, &req.Name, &req.TimeBlockStart, &req.TimeBlockEnd,
			&req.MinTotalStaff, &req.MinSupervisors, &req.IsHoliday); err != nil {
			return nil, fmt.Errorf("failed to scan staffing requirement: %w", err)
		}
		requirements = append(requirements, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staffing requirements: %w", err)
	}

	return requirements, nil
}
