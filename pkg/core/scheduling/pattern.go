package scheduling

import (
	"fmt"
	"sort"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// patternDurations holds the required per-position shift durations for each
// named pattern, in date order. The pattern vocabulary is fixed; it is not
// user-extensible.
var patternDurations = map[model.ShiftPattern][]float64{
	model.PatternFourTens:             {10, 10, 10, 10},
	model.PatternThreeTwelvesPlusFour: {12, 12, 12, 4},
}

// PatternValidation is the outcome of checking a set of assignments against a
// shift pattern. All violations are collected; nothing short-circuits.
type PatternValidation struct {
	IsValid bool
	Errors  []string
}

// ValidatePattern checks one employee's assignments against the rules of the
// named pattern: shift count, per-position durations (with the +24h midnight
// wraparound), and strict consecutive-day contiguity. Zero or one assignment
// trivially passes the contiguity check but still fails the count check when
// the pattern demands more.
func ValidatePattern(pattern model.ShiftPattern, assignments []model.IndividualShift, options map[string]model.ShiftOption) PatternValidation {
	var errs []string

	required, known := patternDurations[pattern]
	if !known {
		return PatternValidation{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("unknown shift pattern %q", pattern)},
		}
	}

	sorted := make([]model.IndividualShift, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	// Count check
	if len(sorted) != len(required) {
		errs = append(errs, fmt.Sprintf("pattern %s requires exactly %d shifts, got %d", pattern, len(required), len(sorted)))
	}

	// Per-position duration check
	for i, shift := range sorted {
		if i >= len(required) {
			break
		}

		hours, err := AssignmentHours(shift, options)
		if err != nil {
			errs = append(errs, fmt.Sprintf("cannot determine duration of shift on %s: %v", shift.Date, err))
			continue
		}

		if hours != required[i] {
			errs = append(errs, fmt.Sprintf("shift %d on %s lasts %.1f hours, pattern %s requires %.1f", i+1, shift.Date, hours, pattern, required[i]))
		}
	}

	// Consecutive-day contiguity, zero tolerance: any gap invalidates the set
	for i := 1; i < len(sorted); i++ {
		prev, err := ParseDate(sorted[i-1].Date)
		if err != nil {
			errs = append(errs, fmt.Sprintf("shift date %q is not a valid YYYY-MM-DD date", sorted[i-1].Date))
			continue
		}
		curr, err := ParseDate(sorted[i].Date)
		if err != nil {
			errs = append(errs, fmt.Sprintf("shift date %q is not a valid YYYY-MM-DD date", sorted[i].Date))
			continue
		}

		if curr.Sub(prev).Hours() != 24 {
			errs = append(errs, fmt.Sprintf("shifts on %s and %s are not on consecutive days", sorted[i-1].Date, sorted[i].Date))
		}
	}

	if errs == nil {
		errs = []string{}
	}
	return PatternValidation{IsValid: len(errs) == 0, Errors: errs}
}
