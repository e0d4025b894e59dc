package model

// Role is an employee's privilege level. Roles form a total order:
// dispatcher < supervisor < manager.
type Role string

const (
	RoleDispatcher Role = "dispatcher"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
)

func (r Role) IsValid() bool {
	return r == RoleDispatcher || r == RoleSupervisor || r == RoleManager
}

// Rank returns the role's position in the privilege order. Unknown roles rank 0
// so a typo never outranks a real role.
func (r Role) Rank() int {
	switch r {
	case RoleDispatcher:
		return 1
	case RoleSupervisor:
		return 2
	case RoleManager:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return r.IsValid() && r.Rank() >= other.Rank()
}

// ShiftPattern names the cadence an employee's weekly shifts must follow.
type ShiftPattern string

const (
	// PatternFourTens is four 10-hour shifts on consecutive days.
	PatternFourTens ShiftPattern = "4x10"
	// PatternThreeTwelvesPlusFour is three 12-hour shifts followed by one
	// 4-hour shift, all on consecutive days.
	PatternThreeTwelvesPlusFour ShiftPattern = "3x12+4"
)

func (p ShiftPattern) IsValid() bool {
	return p == PatternFourTens || p == PatternThreeTwelvesPlusFour
}

// ShiftCategory buckets a shift option by its time of day.
type ShiftCategory string

const (
	CategoryEarly     ShiftCategory = "early"
	CategoryDay       ShiftCategory = "day"
	CategorySwing     ShiftCategory = "swing"
	CategoryGraveyard ShiftCategory = "graveyard"
)

func (c ShiftCategory) IsValid() bool {
	return c == CategoryEarly || c == CategoryDay || c == CategorySwing || c == CategoryGraveyard
}

// ShiftStatus is the lifecycle state of an individual shift.
type ShiftStatus string

const (
	StatusScheduled  ShiftStatus = "scheduled"
	StatusInProgress ShiftStatus = "in_progress"
	StatusCompleted  ShiftStatus = "completed"
	StatusMissed     ShiftStatus = "missed"
	StatusCancelled  ShiftStatus = "cancelled"
)

func (s ShiftStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusMissed, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a shift may move from s to next. The lifecycle
// is linear (scheduled → in_progress → completed/missed) with no backward
// transitions; any non-terminal state may move to cancelled.
func (s ShiftStatus) CanTransition(next ShiftStatus) bool {
	switch s {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusMissed || next == StatusCancelled
	default:
		return false
	}
}

// TimeOffType classifies a time-off request.
type TimeOffType string

const (
	TimeOffVacation TimeOffType = "vacation"
	TimeOffSick     TimeOffType = "sick"
	TimeOffPersonal TimeOffType = "personal"
	TimeOffOther    TimeOffType = "other"
)

func (t TimeOffType) IsValid() bool {
	return t == TimeOffVacation || t == TimeOffSick || t == TimeOffPersonal || t == TimeOffOther
}

// TimeOffStatus is the review state of a time-off request. Approved and
// rejected are terminal.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffRejected TimeOffStatus = "rejected"
)

func (s TimeOffStatus) IsValid() bool {
	return s == TimeOffPending || s == TimeOffApproved || s == TimeOffRejected
}

// Employee represents a dispatch-center staff member
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      Role
	Pattern   ShiftPattern

	// PreferredCategory is a soft preference; empty string means no preference
	PreferredCategory ShiftCategory

	// WeeklyHoursCap is the employee's contracted weekly hours; always > 0
	WeeklyHoursCap float64

	// MaxOvertimeHours is the overtime allowance on top of the weekly cap.
	// Nil means no overtime is allowed at all.
	MaxOvertimeHours *float64
}

// OvertimeAllowance returns the overtime hours the employee may work beyond
// their weekly cap (0 when overtime is not allowed).
func (e Employee) OvertimeAllowance() float64 {
	if e.MaxOvertimeHours == nil {
		return 0
	}
	return *e.MaxOvertimeHours
}

// IsSupervisor reports whether the employee qualifies for supervisor-presence
// requirements (supervisors and managers both do).
func (e Employee) IsSupervisor() bool {
	return e.Role.AtLeast(RoleSupervisor)
}

// ShiftOption is a reusable shift template from the shift catalog
type ShiftOption struct {
	ID   string
	Name string

	// StartTime and EndTime are times of day in HH:mm; a shift whose end is
	// earlier than its start crosses midnight into the next day
	StartTime string
	EndTime   string

	// DurationHours is derived from StartTime/EndTime
	DurationHours float64

	Category           ShiftCategory
	RequiresSupervisor bool
}

// StaffingRequirement is a minimum-coverage window. Holiday requirements apply
// only on holiday dates, regular requirements only on non-holiday dates; the
// two are never active together.
type StaffingRequirement struct {
	ID   string
	Name string

	// TimeBlockStart/TimeBlockEnd bound the half-open window [start, end) in HH:mm
	TimeBlockStart string
	TimeBlockEnd   string

	MinTotalStaff  int
	MinSupervisors int
	IsHoliday      bool
}

// IndividualShift binds one employee to one shift option on one date
type IndividualShift struct {
	ID            string
	EmployeeID    string
	ShiftOptionID string

	// Date is the calendar day the shift starts on, YYYY-MM-DD
	Date string

	Status ShiftStatus

	// ActualStartTime/ActualEndTime are realized ISO-8601 timestamps which may
	// differ from the option template; nil until recorded
	ActualStartTime *string
	ActualEndTime   *string

	IsOvertime bool
}

// TimeOffRequest is an employee's request to be unavailable for a date range
type TimeOffRequest struct {
	ID         string
	EmployeeID string

	// StartDate and EndDate are inclusive, YYYY-MM-DD, EndDate >= StartDate
	StartDate string
	EndDate   string

	Type   TimeOffType
	Status TimeOffStatus
}

// ConflictType classifies a detected scheduling conflict.
type ConflictType string

const (
	ConflictOverlap          ConflictType = "overlap"
	ConflictHoursExceeded    ConflictType = "hours_exceeded"
	ConflictPatternViolation ConflictType = "pattern_violation"
)

// ScheduleConflict is a computed conflict record; it is never persisted as
// primary data.
type ScheduleConflict struct {
	Type       ConflictType
	EmployeeID string
	Date       string
	Message    string
}
