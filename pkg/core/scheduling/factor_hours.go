package scheduling

// targetUtilization is the fraction of the weekly cap the balance factor
// treats as ideal utilization.
const targetUtilization = 0.8

// WeeklyHoursBalanceFactor scores how the candidate shift affects the
// employee's weekly-hours utilization.
//
// With u = projected weekly hours / weekly cap:
//   - u at the target band scores 1; lighter weeks scale down proportionally
//   - between the band and the cap the score falls from 1 to 0.5, so any
//     assignment that pushes the employee close to the cap stays below a
//     well-rested alternative
//   - past the cap the score drops steeply toward 0
type WeeklyHoursBalanceFactor struct{}

func (f *WeeklyHoursBalanceFactor) Name() string {
	return FactorWeeklyHoursBalance
}

func (f *WeeklyHoursBalanceFactor) Score(input ScoringInput) float64 {
	if input.Employee.WeeklyHoursCap <= 0 {
		return 0
	}

	weekStart := WeekStart(input.Start)
	weekEnd := weekStart.AddDate(0, 0, 7)

	weekHours := 0.0
	for _, shift := range input.ExistingShifts {
		if shift.EmployeeID != input.Employee.ID {
			continue
		}
		start, end, err := AssignmentInterval(shift, input.Options)
		if err != nil {
			continue
		}
		if !start.Before(weekStart) && start.Before(weekEnd) {
			weekHours += end.Sub(start).Hours()
		}
	}

	projected := weekHours + input.End.Sub(input.Start).Hours()
	u := projected / input.Employee.WeeklyHoursCap

	switch {
	case u <= targetUtilization:
		return u / targetUtilization
	case u <= 1:
		return 1 - (u-targetUtilization)/(1-targetUtilization)*0.5
	default:
		over := 0.5 - (u-1)*2
		if over < 0 {
			return 0
		}
		return over
	}
}
