package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// GetTimeOffRequest retrieves one time-off request by ID. Returns nil when no
// row matches.
func (d *DB) GetTimeOffRequest(ctx context.Context, id string) (*model.TimeOffRequest, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, employee_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), type, status
		FROM time_off_request
		WHERE id = $1
	`, id)

	var req model.TimeOffRequest
	err := row.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Type, &req.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query time-off request: %w", err)
	}
	return &req, nil
}

// ListTimeOffRequestsInRange retrieves requests whose date range intersects
// [startDate, endDate].
func (d *DB) ListTimeOffRequestsInRange(ctx context.Context, startDate, endDate string) ([]model.TimeOffRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, employee_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), type, status
		FROM time_off_request
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date, id
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query time-off requests: %w", err)
	}
	defer rows.Close()

	var requests []model.TimeOffRequest
	for rows.Next() {
		var req model.TimeOffRequest
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Type, &req.Status); err != nil {
			return nil, fmt.Errorf("failed to scan time-off request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time-off requests: %w", err)
	}

	return requests, nil
}
