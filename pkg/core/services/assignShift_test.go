package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// mockAssignStore implements a test double for AssignShiftStore
type mockAssignStore struct {
	employees map[string]*model.Employee
	options   []model.ShiftOption
	shifts    []model.IndividualShift

	inserted []model.IndividualShift

	getEmployeeErr error
}

func (m *mockAssignStore) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	if m.getEmployeeErr != nil {
		return nil, m.getEmployeeErr
	}
	return m.employees[id], nil
}

func (m *mockAssignStore) GetShiftOption(ctx context.Context, id string) (*model.ShiftOption, error) {
	for i := range m.options {
		if m.options[i].ID == id {
			return &m.options[i], nil
		}
	}
	return nil, nil
}

func (m *mockAssignStore) ListShiftOptions(ctx context.Context) ([]model.ShiftOption, error) {
	return m.options, nil
}

func (m *mockAssignStore) ListShiftsForEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]model.IndividualShift, error) {
	var matching []model.IndividualShift
	for _, shift := range m.shifts {
		if shift.EmployeeID == employeeID {
			matching = append(matching, shift)
		}
	}
	return matching, nil
}

func (m *mockAssignStore) InsertShifts(ctx context.Context, shifts []model.IndividualShift) error {
	m.inserted = append(m.inserted, shifts...)
	return nil
}

func assignTestStore() *mockAssignStore {
	return &mockAssignStore{
		employees: map[string]*model.Employee{
			"disp-1": {ID: "disp-1", Role: model.RoleDispatcher, Pattern: model.PatternFourTens, WeeklyHoursCap: 40},
			"sup-1":  {ID: "sup-1", Role: model.RoleSupervisor, Pattern: model.PatternFourTens, WeeklyHoursCap: 40},
			"mgr-1":  {ID: "mgr-1", Role: model.RoleManager, Pattern: model.PatternFourTens, WeeklyHoursCap: 40},
		},
		options: []model.ShiftOption{
			{ID: "day", Name: "Day", StartTime: "08:00", EndTime: "18:00", DurationHours: 10, Category: model.CategoryDay},
		},
	}
}

// overworkedWeek returns 35 hours of shifts for disp-1 in the week of Sunday
// 2025-03-02, so a 10-hour assignment on the 5th projects past the 40-hour cap.
func overworkedWeek() []model.IndividualShift {
	pin := func(id, date, start, end string) model.IndividualShift {
		return model.IndividualShift{
			ID:              id,
			EmployeeID:      "disp-1",
			ShiftOptionID:   "day",
			Date:            date,
			Status:          model.StatusScheduled,
			ActualStartTime: &start,
			ActualEndTime:   &end,
		}
	}
	return []model.IndividualShift{
		pin("s1", "2025-03-02", "2025-03-02T08:00:00Z", "2025-03-02T20:00:00Z"),
		pin("s2", "2025-03-03", "2025-03-03T08:00:00Z", "2025-03-03T20:00:00Z"),
		pin("s3", "2025-03-04", "2025-03-04T08:00:00Z", "2025-03-04T19:00:00Z"),
	}
}

func TestAssignShift_CleanAssignment(t *testing.T) {
	mock := assignTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "sup-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
	})
	require.NoError(t, err)

	assert.True(t, result.Report.CanProceed)
	assert.True(t, result.Assigned)
	require.NotNil(t, result.Shift)
	assert.NotEmpty(t, result.Shift.ID)
	assert.Equal(t, "disp-1", result.Shift.EmployeeID)
	assert.Equal(t, model.StatusScheduled, result.Shift.Status)
	assert.False(t, result.Shift.IsOvertime)
	assert.Len(t, mock.inserted, 1)
}

func TestAssignShift_HardConflictRejected(t *testing.T) {
	mock := assignTestStore()
	mock.shifts = []model.IndividualShift{
		{ID: "s1", EmployeeID: "disp-1", ShiftOptionID: "day", Date: "2025-03-05", Status: model.StatusScheduled},
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
		Override:      true, // hard conflicts are never overridable
	})
	require.NoError(t, err)

	assert.False(t, result.Assigned)
	assert.Nil(t, result.Shift)
	assert.False(t, result.Report.CanProceed)
	assert.False(t, result.Report.RequiresOverride)
	assert.Empty(t, mock.inserted)
}

func TestAssignShift_SoftConflictWithoutOverride(t *testing.T) {
	mock := assignTestStore()
	mock.shifts = overworkedWeek()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
	})
	require.NoError(t, err)

	assert.False(t, result.Assigned)
	assert.True(t, result.Report.RequiresOverride)
	assert.Empty(t, mock.inserted)
}

func TestAssignShift_ManagerOverrideFlagsOvertime(t *testing.T) {
	mock := assignTestStore()
	mock.shifts = overworkedWeek()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
		Override:      true,
	})
	require.NoError(t, err)

	assert.True(t, result.Assigned)
	require.NotNil(t, result.Shift)
	assert.True(t, result.Shift.IsOvertime)
	assert.Len(t, mock.inserted, 1)
}

func TestAssignShift_SupervisorCannotOverride(t *testing.T) {
	mock := assignTestStore()
	mock.shifts = overworkedWeek()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "sup-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
		Override:      true,
	})
	require.NoError(t, err)

	assert.False(t, result.Assigned)
	assert.True(t, result.Report.RequiresOverride)
	assert.Empty(t, mock.inserted)
}

func TestAssignShift_EmployeeNotFound(t *testing.T) {
	mock := assignTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "ghost",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAssignShift_OptionNotFound(t *testing.T) {
	mock := assignTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "missing",
		Date:          "2025-03-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAssignShift_InvalidDate(t *testing.T) {
	mock := assignTestStore()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "03/05/2025",
	})
	assert.Error(t, err)
}

func TestAssignShift_StoreError(t *testing.T) {
	mock := assignTestStore()
	mock.getEmployeeErr = errors.New("connection refused")
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := AssignShift(ctx, mock, logger, AssignShiftInput{
		ActorID:       "mgr-1",
		EmployeeID:    "disp-1",
		ShiftOptionID: "day",
		Date:          "2025-03-05",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch employee")
}
