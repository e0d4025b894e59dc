package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

const shiftColumns = `id, employee_id, shift_option_id,
	to_char(shift_date, 'YYYY-MM-DD'), status, actual_start_time, actual_end_time, is_overtime`

// ListShiftsBetween retrieves all shifts with dates in [startDate, endDate].
func (d *DB) ListShiftsBetween(ctx context.Context, startDate, endDate string) ([]model.IndividualShift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM individual_shift
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, id
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListShiftsForEmployee retrieves one employee's shifts in [startDate, endDate].
func (d *DB) ListShiftsForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.IndividualShift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM individual_shift
		WHERE employee_id = $1 AND shift_date BETWEEN $2 AND $3
		ORDER BY shift_date, id
	`, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// InsertShifts inserts shift records in a single transaction.
func (d *DB) InsertShifts(ctx context.Context, shifts []model.IndividualShift) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, shift := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO individual_shift
				(id, employee_id, shift_option_id, shift_date, status, actual_start_time, actual_end_time, is_overtime)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, shift.ID, shift.EmployeeID, shift.ShiftOptionID, shift.Date, shift.Status,
			shift.ActualStartTime, shift.ActualEndTime, shift.IsOvertime)
		if err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", shift.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit shift insert: %w", err)
	}
	return nil
}

func collectShifts(rows pgx.Rows) ([]model.IndividualShift, error) {
	var shifts []model.IndividualShift
	for rows.Next() {
		var shift model.IndividualShift
		var actualStart, actualEnd *time.Time
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &shift.ShiftOptionID, &shift.Date,
			&shift.Status, &actualStart, &actualEnd, &shift.IsOvertime); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		if actualStart != nil {
			s := actualStart.UTC().Format(time.RFC3339)
			shift.ActualStartTime = &s
		}
		if actualEnd != nil {
			e := actualEnd.UTC().Format(time.RFC3339)
			shift.ActualEndTime = &e
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}
