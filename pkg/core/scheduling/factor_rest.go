package scheduling

import "time"

// TimeSinceLastShiftFactor scores how rested the employee will be at the
// candidate shift's start.
//
// Score:
//   - 1 when the employee has no prior shift, or the gap since the most recent
//     prior shift's end reaches FullyRestedHours
//   - 0 when the gap is below MinRestHours (an unacceptable assignment,
//     consistent with the conflict detector's hard rest rule)
//   - linear in between
type TimeSinceLastShiftFactor struct{}

func (f *TimeSinceLastShiftFactor) Name() string {
	return FactorTimeSinceLastShift
}

func (f *TimeSinceLastShiftFactor) Score(input ScoringInput) float64 {
	lastEnd := lastShiftEndBefore(input)
	if lastEnd.IsZero() {
		return 1
	}

	gap := input.Start.Sub(lastEnd).Hours()
	if gap < MinRestHours {
		return 0
	}
	if gap >= FullyRestedHours {
		return 1
	}
	return (gap - MinRestHours) / (FullyRestedHours - MinRestHours)
}

// lastShiftEndBefore finds the end of the employee's most recent shift ending
// at or before the candidate's start. Returns the zero time when there is none.
func lastShiftEndBefore(input ScoringInput) time.Time {
	var latest time.Time
	for _, shift := range input.ExistingShifts {
		if shift.EmployeeID != input.Employee.ID {
			continue
		}
		_, end, err := AssignmentInterval(shift, input.Options)
		if err != nil {
			continue
		}
		if end.After(input.Start) {
			continue
		}
		if end.After(latest) {
			latest = end
		}
	}
	return latest
}
