package scheduling

import (
	"time"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// UnfilledRequirement records a requirement window that generation could not
// satisfy. This is a normal, reportable outcome — not an error.
type UnfilledRequirement struct {
	Date              string
	RequirementID     string
	Shortfall         int
	MissingSupervisor bool
}

// GenerationOutcome is a draft schedule plus the requirements that could not
// be met. Generated shifts carry no ID and status "scheduled"; the caller
// assigns IDs when persisting.
type GenerationOutcome struct {
	ScheduledShifts      []model.IndividualShift
	UnfilledRequirements []UnfilledRequirement
}

// Generate produces a draft schedule for the configured window.
//
// Dates are processed chronologically because each assignment feeds the next
// date's rest-period and weekly-hours eligibility. Per date: resolve the
// holiday-aware requirement set, build the available pool (approved time off
// excluded, pending not), and for each requirement window greedily assign the
// highest-scoring conflict-free employees, supervisors first when the window
// demands them. Scoring is deterministic and ties break on employee ID then
// option ID, so identical inputs always yield identical outcomes.
func Generate(config GenerationConfig) (*GenerationOutcome, error) {
	state, err := initGeneration(config)
	if err != nil {
		return nil, err
	}

	for _, day := range state.dates {
		dateStr := day.Format(DateLayout)
		requirements := ApplicableRequirements(config.Requirements, config.HolidayDates[dateStr])
		pool := state.availablePool(day)

		for _, req := range requirements {
			if err := state.fillRequirement(dateStr, req, pool); err != nil {
				return nil, err
			}
		}
	}

	return &GenerationOutcome{
		ScheduledShifts:      state.scheduled,
		UnfilledRequirements: state.unfilled,
	}, nil
}

// fillRequirement assigns employees until the requirement's minimums are met
// or the pool is exhausted, recording any shortfall.
func (s *generationState) fillRequirement(date string, req model.StaffingRequirement, pool []model.Employee) error {
	windowStart, windowEnd, err := TimeWindow(date, req.TimeBlockStart, req.TimeBlockEnd)
	if err != nil {
		return err
	}

	options, err := s.matchingOptions(date, windowStart, windowEnd)
	if err != nil {
		return err
	}

	// Coverage this window already has, from earlier windows on the same date
	// or pre-existing assignments.
	total, supervisors, err := s.currentCoverage(windowStart, windowEnd)
	if err != nil {
		return err
	}

	needSupervisors := req.MinSupervisors - supervisors
	needTotal := req.MinTotalStaff - total

	// Supervisor minimums are filled first so a dispatcher never takes the
	// last slot a supervisor was needed for.
	for needSupervisors > 0 {
		assigned, err := s.assignBest(date, options, pool, true)
		if err != nil {
			return err
		}
		if !assigned {
			break
		}
		needSupervisors--
		needTotal--
	}

	for needTotal > 0 {
		assigned, err := s.assignBest(date, options, pool, false)
		if err != nil {
			return err
		}
		if !assigned {
			break
		}
		needTotal--
	}

	if needTotal > 0 || needSupervisors > 0 {
		shortfall := needTotal
		if shortfall < 0 {
			shortfall = 0
		}
		s.unfilled = append(s.unfilled, UnfilledRequirement{
			Date:              date,
			RequirementID:     req.ID,
			Shortfall:         shortfall,
			MissingSupervisor: needSupervisors > 0,
		})
	}

	return nil
}

// currentCoverage counts assignments already intersecting the window, and how
// many of them belong to supervisors.
func (s *generationState) currentCoverage(windowStart, windowEnd time.Time) (int, int, error) {
	total := 0
	supervisors := 0

	for _, emp := range s.employees {
		for _, shift := range s.shiftsByEmployee[emp.ID] {
			if shift.Status == model.StatusCancelled {
				continue
			}
			start, end, err := AssignmentInterval(shift, s.options)
			if err != nil {
				return 0, 0, err
			}
			if !Intersects(start, end, windowStart, windowEnd) {
				continue
			}
			total++
			if emp.IsSupervisor() {
				supervisors++
			}
			break // one employee covers a window at most once
		}
	}

	return total, supervisors, nil
}

// assignBest picks the highest-scoring conflict-free (employee, option) pair
// and commits the assignment. Candidates with any hard or soft conflict are
// skipped — generation never assigns into an override. Returns false when no
// eligible candidate remains.
func (s *generationState) assignBest(date string, options []model.ShiftOption, pool []model.Employee, supervisorsOnly bool) (bool, error) {
	var bestEmployee *model.Employee
	var bestOption *model.ShiftOption
	bestScore := -1.0

	for i := range pool {
		emp := pool[i]
		if supervisorsOnly && !emp.IsSupervisor() {
			continue
		}

		for j := range options {
			option := options[j]

			candidate, err := NewShiftCandidate(emp.ID, option, date)
			if err != nil {
				return false, err
			}

			report, err := DetectConflicts(emp, candidate, s.shiftsByEmployee[emp.ID], s.options)
			if err != nil {
				return false, err
			}
			if !report.CanProceed {
				continue
			}

			score, err := ScoreShift(emp, option, date, s.shiftsByEmployee[emp.ID], s.options, s.config.Weights)
			if err != nil {
				return false, err
			}

			// Strict greater-than keeps the earliest candidate on ties; the
			// pool is ID-sorted and options are start-time-sorted, so the
			// tie-break is employee ID, then option order.
			if score.Score > bestScore {
				bestScore = score.Score
				bestEmployee = &pool[i]
				bestOption = &options[j]
			}
		}
	}

	if bestEmployee == nil || bestOption == nil {
		return false, nil
	}

	shift := model.IndividualShift{
		EmployeeID:    bestEmployee.ID,
		ShiftOptionID: bestOption.ID,
		Date:          date,
		Status:        model.StatusScheduled,
	}
	s.scheduled = append(s.scheduled, shift)
	s.shiftsByEmployee[bestEmployee.ID] = append(s.shiftsByEmployee[bestEmployee.ID], shift)

	return true, nil
}
