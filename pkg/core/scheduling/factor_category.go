package scheduling

// PreferredCategoryFactor scores an exact match between the candidate option's
// category and the employee's preferred category.
//
// Score:
//   - 1 if the option's category equals the employee's preference
//   - 0 when there is no match, or the employee has no preference
type PreferredCategoryFactor struct{}

func (f *PreferredCategoryFactor) Name() string {
	return FactorPreferredCategory
}

func (f *PreferredCategoryFactor) Score(input ScoringInput) float64 {
	if input.Employee.PreferredCategory == "" {
		return 0
	}
	if input.Option.Category == input.Employee.PreferredCategory {
		return 1
	}
	return 0
}
