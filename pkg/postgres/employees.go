package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// GetEmployee retrieves one employee by ID. Returns nil when no row matches.
func (d *DB) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, role, shift_pattern,
		       preferred_category, weekly_hours_cap, max_overtime_hours
		FROM employee
		WHERE id = $1
	`, id)

	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	return emp, nil
}

// ListActiveEmployees retrieves the active roster ordered by ID.
func (d *DB) ListActiveEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, role, shift_pattern,
		       preferred_category, weekly_hours_cap, max_overtime_hours
		FROM employee
		WHERE is_active
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var emp model.Employee
	var preferredCategory *string
	if err := row.Scan(&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Role,
		&emp.Pattern, &preferredCategory, &emp.WeeklyHoursCap, &emp.MaxOvertimeHours); err != nil {
		return nil, err
	}
	if preferredCategory != nil {
		emp.PreferredCategory = model.ShiftCategory(*preferredCategory)
	}
	return &emp, nil
}
