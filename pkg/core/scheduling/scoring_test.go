package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

func scoringTestEmployee() model.Employee {
	return model.Employee{
		ID:                "emp-1",
		Role:              model.RoleDispatcher,
		Pattern:           model.PatternFourTens,
		PreferredCategory: model.CategoryDay,
		WeeklyHoursCap:    40,
	}
}

func scoringInput(emp model.Employee, existing []model.IndividualShift) ScoringInput {
	options := conflictTestOptions()
	start, _, _ := TimeWindow("2025-03-05", "08:00", "18:00")
	return ScoringInput{
		Employee:       emp,
		Option:         options["day"],
		Date:           "2025-03-05",
		Start:          start,
		End:            start.Add(10 * time.Hour),
		ExistingShifts: existing,
		Options:        options,
	}
}

func TestPreferredCategoryFactor(t *testing.T) {
	factor := &PreferredCategoryFactor{}
	assert.Equal(t, FactorPreferredCategory, factor.Name())

	// Exact match
	assert.Equal(t, 1.0, factor.Score(scoringInput(scoringTestEmployee(), nil)))

	// Mismatch
	emp := scoringTestEmployee()
	emp.PreferredCategory = model.CategoryGraveyard
	assert.Equal(t, 0.0, factor.Score(scoringInput(emp, nil)))

	// No preference
	emp.PreferredCategory = ""
	assert.Equal(t, 0.0, factor.Score(scoringInput(emp, nil)))
}

func TestTimeSinceLastShiftFactor_NoPriorShift(t *testing.T) {
	factor := &TimeSinceLastShiftFactor{}
	assert.Equal(t, FactorTimeSinceLastShift, factor.Name())
	assert.Equal(t, 1.0, factor.Score(scoringInput(scoringTestEmployee(), nil)))
}

func TestTimeSinceLastShiftFactor_Gradient(t *testing.T) {
	factor := &TimeSinceLastShiftFactor{}

	endingAt := func(end string) []model.IndividualShift {
		return []model.IndividualShift{
			actualShift("s1", "2025-03-04", "2025-03-04T02:00:00Z", end),
		}
	}

	// Below the minimum rest the assignment is worthless
	score := factor.Score(scoringInput(scoringTestEmployee(), endingAt("2025-03-04T23:00:00Z")))
	assert.Equal(t, 0.0, score)

	// Exactly at the minimum rest the score starts climbing from zero
	score = factor.Score(scoringInput(scoringTestEmployee(), endingAt("2025-03-04T22:00:00Z")))
	assert.Equal(t, 0.0, score)

	// 17 hours is the midpoint between 10 and 24
	score = factor.Score(scoringInput(scoringTestEmployee(), endingAt("2025-03-04T15:00:00Z")))
	assert.InDelta(t, 0.5, score, 1e-9)

	// Fully rested at 24 hours
	score = factor.Score(scoringInput(scoringTestEmployee(), endingAt("2025-03-04T08:00:00Z")))
	assert.Equal(t, 1.0, score)
}

func TestTimeSinceLastShiftFactor_UsesMostRecentShift(t *testing.T) {
	factor := &TimeSinceLastShiftFactor{}

	existing := []model.IndividualShift{
		actualShift("old", "2025-03-01", "2025-03-01T08:00:00Z", "2025-03-01T18:00:00Z"),
		actualShift("recent", "2025-03-04", "2025-03-04T05:00:00Z", "2025-03-04T15:00:00Z"),
	}

	// The 2025-03-04 15:00 end is the one that matters: 17 hours before the
	// candidate's 08:00 start
	score := factor.Score(scoringInput(scoringTestEmployee(), existing))
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestWeeklyHoursBalanceFactor(t *testing.T) {
	factor := &WeeklyHoursBalanceFactor{}
	assert.Equal(t, FactorWeeklyHoursBalance, factor.Name())

	// A light week scales proportionally: 10 of 40 hours is u=0.25
	score := factor.Score(scoringInput(scoringTestEmployee(), nil))
	assert.InDelta(t, 0.3125, score, 1e-9)

	// 22 existing + 10 candidate = 32 hours, exactly the 80% target
	existing := []model.IndividualShift{
		actualShift("s1", "2025-03-02", "2025-03-02T08:00:00Z", "2025-03-02T20:00:00Z"),
		actualShift("s2", "2025-03-03", "2025-03-03T08:00:00Z", "2025-03-03T18:00:00Z"),
	}
	score = factor.Score(scoringInput(scoringTestEmployee(), existing))
	assert.InDelta(t, 1.0, score, 1e-9)

	// 30 existing + 10 candidate lands exactly on the cap: score 0.5
	existing = []model.IndividualShift{
		actualShift("s1", "2025-03-02", "2025-03-02T08:00:00Z", "2025-03-02T20:00:00Z"),
		actualShift("s2", "2025-03-03", "2025-03-03T08:00:00Z", "2025-03-03T20:00:00Z"),
		actualShift("s3", "2025-03-04", "2025-03-04T08:00:00Z", "2025-03-04T14:00:00Z"),
	}
	score = factor.Score(scoringInput(scoringTestEmployee(), existing))
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestWeeklyHoursBalanceFactor_PastCapDropsSteeply(t *testing.T) {
	factor := &WeeklyHoursBalanceFactor{}

	// 34 existing + 10 candidate = 44 of 40 hours, u=1.1
	existing := []model.IndividualShift{
		actualShift("s1", "2025-03-02", "2025-03-02T08:00:00Z", "2025-03-02T20:00:00Z"),
		actualShift("s2", "2025-03-03", "2025-03-03T08:00:00Z", "2025-03-03T20:00:00Z"),
		actualShift("s3", "2025-03-04", "2025-03-04T08:00:00Z", "2025-03-04T18:00:00Z"),
	}
	score := factor.Score(scoringInput(scoringTestEmployee(), existing))
	assert.InDelta(t, 0.3, score, 1e-9)

	// Far past the cap the score bottoms out at zero
	emp := scoringTestEmployee()
	emp.WeeklyHoursCap = 20
	score = factor.Score(scoringInput(emp, existing))
	assert.Equal(t, 0.0, score)
}

func TestScoreShift_WeightedSum(t *testing.T) {
	emp := scoringTestEmployee()

	score, err := ScoreShift(emp, conflictTestOptions()["day"], "2025-03-05", nil, conflictTestOptions(), nil)
	require.NoError(t, err)

	// preferred_category=1, time_since_last_shift=1, weekly_hours_balance=0.3125
	require.Len(t, score.Factors, 3)
	assert.Equal(t, 1.0, score.Factors[FactorPreferredCategory])
	assert.Equal(t, 1.0, score.Factors[FactorTimeSinceLastShift])
	assert.InDelta(t, 0.3125, score.Factors[FactorWeeklyHoursBalance], 1e-9)

	expected := 1.0*0.3 + 1.0*0.4 + 0.3125*0.3
	assert.InDelta(t, expected, score.Score, 1e-9)
}

func TestScoreShift_WeightOverridesMergeOverDefaults(t *testing.T) {
	emp := scoringTestEmployee()
	weights := ScoreWeights{FactorPreferredCategory: 1.0}

	score, err := ScoreShift(emp, conflictTestOptions()["day"], "2025-03-05", nil, conflictTestOptions(), weights)
	require.NoError(t, err)

	// preferred_category weight overridden to 1.0; the other two keep defaults
	expected := 1.0*1.0 + 1.0*0.4 + 0.3125*0.3
	assert.InDelta(t, expected, score.Score, 1e-9)
}

func TestScoreShift_Deterministic(t *testing.T) {
	emp := scoringTestEmployee()
	existing := []model.IndividualShift{
		actualShift("s1", "2025-03-03", "2025-03-03T08:00:00Z", "2025-03-03T18:00:00Z"),
	}

	first, err := ScoreShift(emp, conflictTestOptions()["day"], "2025-03-05", existing, conflictTestOptions(), nil)
	require.NoError(t, err)
	second, err := ScoreShift(emp, conflictTestOptions()["day"], "2025-03-05", existing, conflictTestOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreShift_InvalidDate(t *testing.T) {
	_, err := ScoreShift(scoringTestEmployee(), conflictTestOptions()["day"], "bad-date", nil, conflictTestOptions(), nil)
	assert.Error(t, err)
}
