package scheduling

import (
	"fmt"
	"time"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

const (
	// DateLayout is the calendar-date wire format used throughout the system
	DateLayout = "2006-01-02"

	// TimeOfDayLayout is the 24-hour time-of-day wire format
	TimeOfDayLayout = "15:04"

	// MinRestHours is the minimum gap between one shift's end and the next
	// shift's start. A gap of exactly MinRestHours is acceptable.
	MinRestHours = 10.0

	// FullyRestedHours is the gap at which an employee counts as fully rested
	// for scoring purposes
	FullyRestedHours = 24.0
)

// ParseDate parses a YYYY-MM-DD date into a UTC midnight timestamp.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseTimeOfDay parses an HH:mm string into minutes past midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q (want HH:mm): %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TimeWindow resolves a time-of-day window on a given date. An end time at or
// before the start time wraps past midnight into the following day.
func TimeWindow(date string, startTime, endTime string) (time.Time, time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startMin, err := ParseTimeOfDay(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ParseTimeOfDay(endTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := day.Add(time.Duration(startMin) * time.Minute)
	end := day.Add(time.Duration(endMin) * time.Minute)
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	return start, end, nil
}

// WindowDuration returns the duration in hours of a time-of-day window,
// applying the midnight wraparound.
func WindowDuration(startTime, endTime string) (float64, error) {
	startMin, err := ParseTimeOfDay(startTime)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseTimeOfDay(endTime)
	if err != nil {
		return 0, err
	}

	minutes := endMin - startMin
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60.0, nil
}

// Intersects reports whether the intervals [aStart, aEnd) and [bStart, bEnd)
// overlap. Touching endpoints do not intersect.
func Intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WeekStart returns midnight of the Sunday beginning the calendar week that
// contains t. Sunday is the week-start convention for all weekly-hours math;
// this function is the only place that knows it.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// AssignmentInterval resolves the concrete start/end timestamps of a stored
// assignment. Recorded actual times win over the option template.
func AssignmentInterval(shift model.IndividualShift, options map[string]model.ShiftOption) (time.Time, time.Time, error) {
	if shift.ActualStartTime != nil && shift.ActualEndTime != nil {
		start, err := time.Parse(time.RFC3339, *shift.ActualStartTime)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("shift %s has invalid actual start time: %w", shift.ID, err)
		}
		end, err := time.Parse(time.RFC3339, *shift.ActualEndTime)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("shift %s has invalid actual end time: %w", shift.ID, err)
		}
		return start.UTC(), end.UTC(), nil
	}

	option, ok := options[shift.ShiftOptionID]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("shift %s references unknown shift option %s", shift.ID, shift.ShiftOptionID)
	}

	return TimeWindow(shift.Date, option.StartTime, option.EndTime)
}

// AssignmentHours returns the worked hours of a stored assignment.
func AssignmentHours(shift model.IndividualShift, options map[string]model.ShiftOption) (float64, error) {
	start, end, err := AssignmentInterval(shift, options)
	if err != nil {
		return 0, err
	}
	return end.Sub(start).Hours(), nil
}

// OptionsByID indexes a shift catalog by option ID.
func OptionsByID(options []model.ShiftOption) map[string]model.ShiftOption {
	indexed := make(map[string]model.ShiftOption, len(options))
	for _, option := range options {
		indexed[option.ID] = option
	}
	return indexed
}
