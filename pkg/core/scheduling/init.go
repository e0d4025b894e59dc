package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// MaxGenerationDays caps a generation window at six months.
const MaxGenerationDays = 184

// GenerationConfig is the full input snapshot for one generation run. The
// generator performs no I/O of its own; callers fetch the snapshot and are
// responsible for its consistency.
type GenerationConfig struct {
	// StartDate and EndDate bound the inclusive generation window, YYYY-MM-DD
	StartDate string
	EndDate   string

	// Employees is the active roster
	Employees []model.Employee

	// ShiftOptions is the shift catalog
	ShiftOptions []model.ShiftOption

	// Requirements is the raw requirement list; the generator resolves holiday
	// applicability per date using HolidayDates
	Requirements []model.StaffingRequirement

	// TimeOffRequests are the known requests. Only approved requests exclude
	// an employee from the pool; pending requests do not (business rule —
	// availability is not blocked on an undecided request).
	TimeOffRequests []model.TimeOffRequest

	// ExistingShifts are assignments already persisted in or near the window,
	// consulted for rest-period and weekly-hours continuity
	ExistingShifts []model.IndividualShift

	// HolidayDates marks which dates in the window are holidays
	HolidayDates map[string]bool

	// Weights overrides scoring weights; nil keeps DefaultWeights
	Weights ScoreWeights
}

// ValidateGenerationWindow checks a window before any assignment work begins.
// Failures are reported as messages, one per problem.
func ValidateGenerationWindow(startDate, endDate string) []string {
	var errs []string

	start, startErr := ParseDate(startDate)
	if startErr != nil {
		errs = append(errs, fmt.Sprintf("start date %q is not a valid YYYY-MM-DD date", startDate))
	}
	end, endErr := ParseDate(endDate)
	if endErr != nil {
		errs = append(errs, fmt.Sprintf("end date %q is not a valid YYYY-MM-DD date", endDate))
	}
	if startErr != nil || endErr != nil {
		return errs
	}

	if end.Before(start) {
		errs = append(errs, fmt.Sprintf("end date %s is before start date %s", endDate, startDate))
		return errs
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxGenerationDays {
		errs = append(errs, fmt.Sprintf("window of %d days exceeds the maximum of %d days (6 months)", days, MaxGenerationDays))
	}

	return errs
}

// dateRange is a parsed inclusive date interval.
type dateRange struct {
	start time.Time
	end   time.Time
}

func (r dateRange) contains(day time.Time) bool {
	return !day.Before(r.start) && !day.After(r.end)
}

// generationState carries the evolving state of one generation run.
type generationState struct {
	config    GenerationConfig
	dates     []time.Time
	employees []model.Employee
	options   map[string]model.ShiftOption

	// approvedTimeOff holds each employee's approved absence ranges
	approvedTimeOff map[string][]dateRange

	// shiftsByEmployee accumulates existing plus newly generated assignments,
	// so each date's decisions see every earlier decision
	shiftsByEmployee map[string][]model.IndividualShift

	scheduled []model.IndividualShift
	unfilled  []UnfilledRequirement
}

// initGeneration validates the window and builds the run state: parsed dates,
// a sorted roster (employee-ID order is the deterministic tie-break), the
// option index, and the approved-time-off lookup.
func initGeneration(config GenerationConfig) (*generationState, error) {
	if errs := ValidateGenerationWindow(config.StartDate, config.EndDate); len(errs) > 0 {
		return nil, fmt.Errorf("invalid generation window: %s", errs[0])
	}

	start, _ := ParseDate(config.StartDate)
	end, _ := ParseDate(config.EndDate)

	var dates []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day)
	}

	employees := make([]model.Employee, len(config.Employees))
	copy(employees, config.Employees)
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	for _, emp := range employees {
		if emp.WeeklyHoursCap <= 0 {
			return nil, fmt.Errorf("employee %s has a non-positive weekly hours cap", emp.ID)
		}
	}

	approved := make(map[string][]dateRange)
	for _, req := range config.TimeOffRequests {
		if req.Status != model.TimeOffApproved {
			continue
		}
		rangeStart, err := ParseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("time-off request %s: %w", req.ID, err)
		}
		rangeEnd, err := ParseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("time-off request %s: %w", req.ID, err)
		}
		approved[req.EmployeeID] = append(approved[req.EmployeeID], dateRange{start: rangeStart, end: rangeEnd})
	}

	shiftsByEmployee := make(map[string][]model.IndividualShift)
	for _, shift := range config.ExistingShifts {
		shiftsByEmployee[shift.EmployeeID] = append(shiftsByEmployee[shift.EmployeeID], shift)
	}

	return &generationState{
		config:           config,
		dates:            dates,
		employees:        employees,
		options:          OptionsByID(config.ShiftOptions),
		approvedTimeOff:  approved,
		shiftsByEmployee: shiftsByEmployee,
		scheduled:        []model.IndividualShift{},
		unfilled:         []UnfilledRequirement{},
	}, nil
}

// availablePool returns a fresh slice of the employees available on a date:
// the roster minus anyone with approved time off covering that date. Each
// call builds a new slice so per-date steps never alias each other's pools.
func (s *generationState) availablePool(day time.Time) []model.Employee {
	pool := make([]model.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		onLeave := false
		for _, r := range s.approvedTimeOff[emp.ID] {
			if r.contains(day) {
				onLeave = true
				break
			}
		}
		if !onLeave {
			pool = append(pool, emp)
		}
	}
	return pool
}

// matchingOptions returns catalog options whose interval on the date
// intersects the requirement window, sorted by start time then ID.
func (s *generationState) matchingOptions(date string, windowStart, windowEnd time.Time) ([]model.ShiftOption, error) {
	var matching []model.ShiftOption
	for _, option := range s.config.ShiftOptions {
		start, end, err := TimeWindow(date, option.StartTime, option.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift option %s: %w", option.ID, err)
		}
		if Intersects(start, end, windowStart, windowEnd) {
			matching = append(matching, option)
		}
	}

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].StartTime != matching[j].StartTime {
			return matching[i].StartTime < matching[j].StartTime
		}
		return matching[i].ID < matching[j].ID
	})

	return matching, nil
}
