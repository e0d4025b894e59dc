package scheduling

import (
	"fmt"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// TimeOffConflict records an assignment that collides with a time-off request.
type TimeOffConflict struct {
	ShiftID string
	Date    string
}

// TimeOffCheckResult is the outcome of checking a time-off request. Validation
// failures and conflicts are both reported rather than returned as errors.
type TimeOffCheckResult struct {
	IsValid   bool
	Errors    []string
	Conflicts []TimeOffConflict
}

// ValidateTimeOffRequest checks a request's dates and enumerations. Every
// failure produces its own message; nothing short-circuits.
func ValidateTimeOffRequest(req model.TimeOffRequest) []string {
	var errs []string

	start, startErr := ParseDate(req.StartDate)
	if startErr != nil {
		errs = append(errs, fmt.Sprintf("start date %q is not a valid YYYY-MM-DD date", req.StartDate))
	}
	end, endErr := ParseDate(req.EndDate)
	if endErr != nil {
		errs = append(errs, fmt.Sprintf("end date %q is not a valid YYYY-MM-DD date", req.EndDate))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Sprintf("end date %s is before start date %s", req.EndDate, req.StartDate))
	}

	if !req.Type.IsValid() {
		errs = append(errs, fmt.Sprintf("type %q is not a valid time-off type", req.Type))
	}
	if !req.Status.IsValid() {
		errs = append(errs, fmt.Sprintf("status %q is not a valid time-off status", req.Status))
	}

	return errs
}

// FindTimeOffConflicts returns the assignments belonging to the request's
// employee whose date falls within the request's inclusive date range.
// Matching is by date only, never by time of day; cancelled shifts are ignored.
func FindTimeOffConflicts(req model.TimeOffRequest, assignments []model.IndividualShift) []TimeOffConflict {
	conflicts := make([]TimeOffConflict, 0)

	start, err := ParseDate(req.StartDate)
	if err != nil {
		return conflicts
	}
	end, err := ParseDate(req.EndDate)
	if err != nil {
		return conflicts
	}

	for _, shift := range assignments {
		if shift.EmployeeID != req.EmployeeID {
			continue
		}
		if shift.Status == model.StatusCancelled {
			continue
		}

		date, err := ParseDate(shift.Date)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}

		conflicts = append(conflicts, TimeOffConflict{ShiftID: shift.ID, Date: shift.Date})
	}

	return conflicts
}

// CheckTimeOff validates a time-off request and, when it is well formed,
// reports the assignments it collides with.
func CheckTimeOff(req model.TimeOffRequest, assignments []model.IndividualShift) TimeOffCheckResult {
	errs := ValidateTimeOffRequest(req)
	if len(errs) > 0 {
		return TimeOffCheckResult{IsValid: false, Errors: errs, Conflicts: []TimeOffConflict{}}
	}

	return TimeOffCheckResult{
		IsValid:   true,
		Errors:    []string{},
		Conflicts: FindTimeOffConflicts(req, assignments),
	}
}
