package scheduling

import (
	"time"

	"github.com/scattered-vibes/shifterino/pkg/core/model"
)

// Factor name keys, also the keys of ScoreWeights and ShiftScore.Factors.
const (
	FactorPreferredCategory  = "preferred_category"
	FactorTimeSinceLastShift = "time_since_last_shift"
	FactorWeeklyHoursBalance = "weekly_hours_balance"
)

// ScoreWeights maps factor names to their weight in the overall score.
type ScoreWeights map[string]float64

// DefaultWeights are the built-in factor weights. Callers may override any
// subset per call; unnamed factors keep their default.
var DefaultWeights = ScoreWeights{
	FactorPreferredCategory:  0.3,
	FactorTimeSinceLastShift: 0.4,
	FactorWeeklyHoursBalance: 0.3,
}

// ScoreFactor computes one normalized sub-score in [0, 1] for a candidate
// assignment. Factors must be pure: identical inputs always produce identical
// scores, so generation stays reproducible.
type ScoreFactor interface {
	Name() string
	Score(input ScoringInput) float64
}

// scoreFactors is the fixed factor registry, in deterministic order.
var scoreFactors = []ScoreFactor{
	&PreferredCategoryFactor{},
	&TimeSinceLastShiftFactor{},
	&WeeklyHoursBalanceFactor{},
}

// ScoringInput carries everything a factor may consult.
type ScoringInput struct {
	Employee model.Employee
	Option   model.ShiftOption
	Date     string

	// Start and End are the candidate shift's resolved interval
	Start time.Time
	End   time.Time

	// ExistingShifts are the employee's other shifts in the lookback window
	ExistingShifts []model.IndividualShift

	// Options indexes the shift catalog for resolving existing shift intervals
	Options map[string]model.ShiftOption
}

// ShiftScore is the weighted total plus each factor's unweighted sub-score.
type ShiftScore struct {
	Score   float64
	Factors map[string]float64
}

// ScoreShift computes the desirability of assigning the employee to the shift
// option on the date. The score is the weighted sum of the factor sub-scores.
func ScoreShift(emp model.Employee, option model.ShiftOption, date string, existing []model.IndividualShift, options map[string]model.ShiftOption, weights ScoreWeights) (ShiftScore, error) {
	start, end, err := TimeWindow(date, option.StartTime, option.EndTime)
	if err != nil {
		return ShiftScore{}, err
	}

	input := ScoringInput{
		Employee:       emp,
		Option:         option,
		Date:           date,
		Start:          start,
		End:            end,
		ExistingShifts: existing,
		Options:        options,
	}

	resolved := make(ScoreWeights, len(DefaultWeights))
	for name, weight := range DefaultWeights {
		resolved[name] = weight
	}
	for name, weight := range weights {
		resolved[name] = weight
	}

	score := ShiftScore{Factors: make(map[string]float64, len(scoreFactors))}
	for _, factor := range scoreFactors {
		value := factor.Score(input)
		score.Factors[factor.Name()] = value
		score.Score += value * resolved[factor.Name()]
	}

	return score, nil
}
