package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Rank(t *testing.T) {
	assert.Equal(t, 1, RoleDispatcher.Rank())
	assert.Equal(t, 2, RoleSupervisor.Rank())
	assert.Equal(t, 3, RoleManager.Rank())
	assert.Equal(t, 0, Role("intern").Rank())
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleManager.AtLeast(RoleSupervisor))
	assert.True(t, RoleSupervisor.AtLeast(RoleSupervisor))
	assert.False(t, RoleDispatcher.AtLeast(RoleSupervisor))

	// An unknown role never qualifies, even against dispatcher
	assert.False(t, Role("intern").AtLeast(RoleDispatcher))
}

func TestShiftStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusScheduled.CanTransition(StatusInProgress))
	assert.True(t, StatusScheduled.CanTransition(StatusCancelled))
	assert.True(t, StatusInProgress.CanTransition(StatusCompleted))
	assert.True(t, StatusInProgress.CanTransition(StatusMissed))
	assert.True(t, StatusInProgress.CanTransition(StatusCancelled))

	// No skipping forward or moving backward
	assert.False(t, StatusScheduled.CanTransition(StatusCompleted))
	assert.False(t, StatusInProgress.CanTransition(StatusScheduled))

	// Terminal states go nowhere
	assert.False(t, StatusCompleted.CanTransition(StatusCancelled))
	assert.False(t, StatusMissed.CanTransition(StatusInProgress))
	assert.False(t, StatusCancelled.CanTransition(StatusScheduled))
}

func TestEmployee_OvertimeAllowance(t *testing.T) {
	none := Employee{WeeklyHoursCap: 40}
	assert.Equal(t, 0.0, none.OvertimeAllowance())

	eight := 8.0
	some := Employee{WeeklyHoursCap: 40, MaxOvertimeHours: &eight}
	assert.Equal(t, 8.0, some.OvertimeAllowance())
}

func TestEmployee_IsSupervisor(t *testing.T) {
	assert.False(t, Employee{Role: RoleDispatcher}.IsSupervisor())
	assert.True(t, Employee{Role: RoleSupervisor}.IsSupervisor())

	// Managers satisfy supervisor-presence requirements too
	assert.True(t, Employee{Role: RoleManager}.IsSupervisor())
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, PatternFourTens.IsValid())
	assert.True(t, PatternThreeTwelvesPlusFour.IsValid())
	assert.False(t, ShiftPattern("5x8").IsValid())

	assert.True(t, CategoryGraveyard.IsValid())
	assert.False(t, ShiftCategory("night").IsValid())

	assert.True(t, TimeOffVacation.IsValid())
	assert.False(t, TimeOffType("holiday").IsValid())

	assert.True(t, TimeOffPending.IsValid())
	assert.False(t, TimeOffStatus("withdrawn").IsValid())
}
