package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

func strPtr(s string) *string {
	return &s
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2025-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDate("02/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("2025-13-40")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	minutes, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8*60+30, minutes)

	minutes, err = ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	_, err = ParseTimeOfDay("8am")
	assert.Error(t, err)
}

func TestTimeWindow_SameDay(t *testing.T) {
	start, end, err := TimeWindow("2025-06-01", "08:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), end)
}

func TestTimeWindow_MidnightWraparound(t *testing.T) {
	start, end, err := TimeWindow("2025-06-01", "22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC), end)
}

func TestWindowDuration(t *testing.T) {
	hours, err := WindowDuration("08:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, 10.0, hours)

	// Crossing midnight
	hours, err = WindowDuration("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, 8.0, hours)

	// Equal start and end wraps to a full day
	hours, err = WindowDuration("08:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 24.0, hours)
}

func TestIntersects(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	assert.True(t, Intersects(at(8), at(18), at(17), at(22)))
	assert.True(t, Intersects(at(8), at(18), at(9), at(10)))
	assert.False(t, Intersects(at(8), at(12), at(14), at(18)))

	// Touching endpoints do not intersect
	assert.False(t, Intersects(at(8), at(12), at(12), at(18)))
	assert.False(t, Intersects(at(12), at(18), at(8), at(12)))
}

func TestWeekStart_SundayConvention(t *testing.T) {
	// 2025-03-05 is a Wednesday
	wednesday := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), WeekStart(wednesday))

	// A Sunday is its own week start
	sunday := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), WeekStart(sunday))

	// A Saturday belongs to the week that began six days earlier
	saturday := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC), WeekStart(saturday))
}

func TestAssignmentInterval_FromTemplate(t *testing.T) {
	options := map[string]model.ShiftOption{
		"day": {ID: "day", StartTime: "08:00", EndTime: "18:00"},
	}
	shift := model.IndividualShift{ID: "s1", ShiftOptionID: "day", Date: "2025-06-01"}

	start, end, err := AssignmentInterval(shift, options)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), end)
}

func TestAssignmentInterval_ActualTimesWin(t *testing.T) {
	options := map[string]model.ShiftOption{
		"day": {ID: "day", StartTime: "08:00", EndTime: "18:00"},
	}
	shift := model.IndividualShift{
		ID:              "s1",
		ShiftOptionID:   "day",
		Date:            "2025-06-01",
		ActualStartTime: strPtr("2025-06-01T09:15:00Z"),
		ActualEndTime:   strPtr("2025-06-01T19:45:00Z"),
	}

	start, end, err := AssignmentInterval(shift, options)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 1, 19, 45, 0, 0, time.UTC), end)
}

func TestAssignmentInterval_UnknownOption(t *testing.T) {
	shift := model.IndividualShift{ID: "s1", ShiftOptionID: "missing", Date: "2025-06-01"}

	_, _, err := AssignmentInterval(shift, map[string]model.ShiftOption{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shift option")
}

func TestAssignmentHours(t *testing.T) {
	options := map[string]model.ShiftOption{
		"grave": {ID: "grave", StartTime: "22:00", EndTime: "06:00"},
	}
	shift := model.IndividualShift{ID: "s1", ShiftOptionID: "grave", Date: "2025-06-01"}

	hours, err := AssignmentHours(shift, options)
	require.NoError(t, err)
	assert.Equal(t, 8.0, hours)
}

func TestOptionsByID(t *testing.T) {
	indexed := OptionsByID([]model.ShiftOption{
		{ID: "a", Name: "Early"},
		{ID: "b", Name: "Day"},
	})
	assert.Len(t, indexed, 2)
	assert.Equal(t, "Early", indexed["a"].Name)
	assert.Equal(t, "Day", indexed["b"].Name)
}
