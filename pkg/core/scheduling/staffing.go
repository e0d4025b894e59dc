package scheduling

import (
	"fmt"
	"sort"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// StaffingGap records how one requirement window fared for one date.
type StaffingGap struct {
	RequirementID       string
	Date                string
	RequiredCount       int
	ActualCount         int
	RequiredSupervisors int
	ActualSupervisors   int
	MissingSupervisor   bool
}

// StaffingReport is the schedule-level verdict for a date, with one gap record
// per requirement window.
type StaffingReport struct {
	IsValid bool
	Errors  []string
	Gaps    []StaffingGap
}

// ApplicableRequirements filters a raw requirement list for a date's holiday
// status. Holiday and regular requirements are mutually exclusive: never both
// active on the same date. The result is sorted by window start, then ID, so
// downstream consumers iterate deterministically.
func ApplicableRequirements(requirements []model.StaffingRequirement, isHoliday bool) []model.StaffingRequirement {
	applicable := make([]model.StaffingRequirement, 0, len(requirements))
	for _, req := range requirements {
		if req.IsHoliday == isHoliday {
			applicable = append(applicable, req)
		}
	}

	sort.Slice(applicable, func(i, j int) bool {
		if applicable[i].TimeBlockStart != applicable[j].TimeBlockStart {
			return applicable[i].TimeBlockStart < applicable[j].TimeBlockStart
		}
		return applicable[i].ID < applicable[j].ID
	})

	return applicable
}

// EvaluateStaffing checks whether the shifts scheduled for a date satisfy each
// requirement window. A shift counts toward a window when its interval
// intersects the window — partial overlap counts, containment is not required.
// Supervisor presence means at least one intersecting shift belongs to a
// supervisor-ranked employee.
func EvaluateStaffing(date string, requirements []model.StaffingRequirement, shifts []model.IndividualShift, options map[string]model.ShiftOption, employees map[string]model.Employee) (StaffingReport, error) {
	report := StaffingReport{Errors: []string{}, Gaps: []StaffingGap{}}

	for _, req := range requirements {
		windowStart, windowEnd, err := TimeWindow(date, req.TimeBlockStart, req.TimeBlockEnd)
		if err != nil {
			return StaffingReport{}, fmt.Errorf("requirement %s has an invalid time block: %w", req.ID, err)
		}

		total := 0
		supervisors := 0
		for _, shift := range shifts {
			if shift.Status == model.StatusCancelled {
				continue
			}

			start, end, err := AssignmentInterval(shift, options)
			if err != nil {
				return StaffingReport{}, err
			}
			if !Intersects(start, end, windowStart, windowEnd) {
				continue
			}

			total++
			if emp, ok := employees[shift.EmployeeID]; ok && emp.IsSupervisor() {
				supervisors++
			}
		}

		gap := StaffingGap{
			RequirementID:       req.ID,
			Date:                date,
			RequiredCount:       req.MinTotalStaff,
			ActualCount:         total,
			RequiredSupervisors: req.MinSupervisors,
			ActualSupervisors:   supervisors,
			MissingSupervisor:   req.MinSupervisors > 0 && supervisors < req.MinSupervisors,
		}
		report.Gaps = append(report.Gaps, gap)

		if total < req.MinTotalStaff {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: window %s-%s is understaffed, %d of %d required", date, req.TimeBlockStart, req.TimeBlockEnd, total, req.MinTotalStaff))
		}
		if gap.MissingSupervisor {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: window %s-%s has %d supervisors, %d required", date, req.TimeBlockStart, req.TimeBlockEnd, supervisors, req.MinSupervisors))
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report, nil
}
