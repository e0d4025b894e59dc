package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// ShiftCandidate is a proposed assignment being checked before it exists.
type ShiftCandidate struct {
	EmployeeID    string
	ShiftOptionID string
	Date          string
	Start         time.Time
	End           time.Time
}

// NewShiftCandidate builds a candidate from a shift option on a date.
func NewShiftCandidate(employeeID string, option model.ShiftOption, date string) (ShiftCandidate, error) {
	start, end, err := TimeWindow(date, option.StartTime, option.EndTime)
	if err != nil {
		return ShiftCandidate{}, err
	}
	return ShiftCandidate{
		EmployeeID:    employeeID,
		ShiftOptionID: option.ID,
		Date:          date,
		Start:         start,
		End:           end,
	}, nil
}

// DurationHours returns the candidate shift's length in hours.
func (c ShiftCandidate) DurationHours() float64 {
	return c.End.Sub(c.Start).Hours()
}

// ConflictReport is the outcome of checking a candidate assignment.
//
// Hard conflicts (overlap, insufficient rest) can never proceed. Soft
// conflicts (weekly-hours overage) set RequiresOverride; the caller decides
// whether a manager override applies — the detector never applies one itself.
type ConflictReport struct {
	Conflicts        []model.ScheduleConflict
	CanProceed       bool
	RequiresOverride bool
	Message          string
}

// DetectConflicts checks a candidate assignment against the employee's
// existing shifts. All three checks run independently; none short-circuits:
//
//  1. Overlap with any existing shift interval (hard).
//  2. An existing shift ending within the MinRestHours before the candidate's
//     start (hard). A gap of exactly MinRestHours is acceptable.
//  3. Projected weekly hours exceeding the cap plus the overtime allowance
//     (soft). Weeks start on Sunday, see WeekStart.
//
// A lookup failure while resolving stored shift intervals propagates as an
// error with no conflicts, never as a false "no conflicts" result.
func DetectConflicts(emp model.Employee, candidate ShiftCandidate, existing []model.IndividualShift, options map[string]model.ShiftOption) (ConflictReport, error) {
	var conflicts []model.ScheduleConflict
	hard := false
	soft := false

	weekStart := WeekStart(candidate.Start)
	weekEnd := weekStart.AddDate(0, 0, 7)
	weekHours := 0.0

	for _, shift := range existing {
		if shift.EmployeeID != emp.ID {
			continue
		}
		if shift.Status == model.StatusCancelled {
			continue
		}

		start, end, err := AssignmentInterval(shift, options)
		if err != nil {
			return ConflictReport{Conflicts: []model.ScheduleConflict{}}, err
		}

		// Check 1: overlap
		if Intersects(start, end, candidate.Start, candidate.End) {
			hard = true
			conflicts = append(conflicts, model.ScheduleConflict{
				Type:       model.ConflictOverlap,
				EmployeeID: emp.ID,
				Date:       candidate.Date,
				Message:    fmt.Sprintf("overlaps existing shift on %s (%s - %s)", shift.Date, start.Format("15:04"), end.Format("15:04")),
			})
		}

		// Check 2: rest period before the candidate's start
		if !end.After(candidate.Start) {
			gap := candidate.Start.Sub(end).Hours()
			if gap < MinRestHours {
				hard = true
				conflicts = append(conflicts, model.ScheduleConflict{
					Type:       model.ConflictOverlap,
					EmployeeID: emp.ID,
					Date:       candidate.Date,
					Message:    fmt.Sprintf("insufficient rest: only %.1f hours since shift ending %s, %.0f required", gap, end.Format("2006-01-02 15:04"), MinRestHours),
				})
			}
		}

		// Accumulate worked hours in the candidate's calendar week
		if !start.Before(weekStart) && start.Before(weekEnd) {
			weekHours += end.Sub(start).Hours()
		}
	}

	// Check 3: weekly-hours cap
	projected := weekHours + candidate.DurationHours()
	allowed := emp.WeeklyHoursCap + emp.OvertimeAllowance()
	if projected > allowed {
		soft = true
		conflicts = append(conflicts, model.ScheduleConflict{
			Type:       model.ConflictHoursExceeded,
			EmployeeID: emp.ID,
			Date:       candidate.Date,
			Message:    fmt.Sprintf("projected %.1f weekly hours exceeds cap of %.1f (overtime allowance %.1f)", projected, emp.WeeklyHoursCap, emp.OvertimeAllowance()),
		})
	}

	if conflicts == nil {
		conflicts = []model.ScheduleConflict{}
	}

	report := ConflictReport{Conflicts: conflicts}
	switch {
	case hard:
		report.Message = "assignment is blocked: " + joinConflictMessages(conflicts)
	case soft:
		report.RequiresOverride = true
		report.Message = "assignment requires a manager override: " + joinConflictMessages(conflicts)
	default:
		report.CanProceed = true
		report.Message = "no conflicts detected"
	}

	return report, nil
}

func joinConflictMessages(conflicts []model.ScheduleConflict) string {
	messages := make([]string, len(conflicts))
	for i, c := range conflicts {
		messages[i] = c.Message
	}
	return strings.Join(messages, "; ")
}
