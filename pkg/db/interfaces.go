package db

import (
	"context"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// Store is the full set of database operations the application uses. Services
// declare their own narrow interfaces; Store is the union an implementation
// (pkg/postgres) satisfies and the CLI wires in.
type Store interface {
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	ListActiveEmployees(ctx context.Context) ([]model.Employee, error)

	GetShiftOption(ctx context.Context, id string) (*model.ShiftOption, error)
	ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error)

	ListStaffingRequirements(ctx context.Context) ([]model.StaffingRequirement, error)

	GetTimeOffRequest(ctx context.Context, id string) (*model.TimeOffRequest, error)
	ListTimeOffRequestsInRange(ctx context.Context, startDate, endDate string) ([]model.TimeOffRequest, error)

	ListShiftsBetween(ctx context.Context, startDate, endDate string) ([]model.IndividualShift, error)
	ListShiftsForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.IndividualShift, error)
	InsertShifts(ctx context.Context, shifts []model.IndividualShift) error
}
