package sof

// Scenario is a planning projection for a prospective laytime budget,
// independent of any parsed document.
type Scenario struct {
	LaytimeHours        float64 `json:"laytime_hours"`
	NoticePeriodHours   float64 `json:"notice_period_hours"`
	TotalTimeHours      float64 `json:"total_time_hours"`
	TotalTimeDays       float64 `json:"total_time_days"`
	DemurrageRatePerDay float64 `json:"demurrage_rate_usd_per_day"`
	DespatchRatePerDay  float64 `json:"despatch_rate_usd_per_day"`
	WorkingHoursPerDay  float64 `json:"working_hours_per_day"`
}

// CalculateScenario projects total port time for a laytime budget plus
// a NOR notice period, with the day length taken as workingHoursPerDay.
// Zero or negative workingHoursPerDay falls back to 24.
func CalculateScenario(laytimeHours, noticePeriodHours, workingHoursPerDay float64, rates Rates) Scenario {
	if workingHoursPerDay <= 0 {
		workingHoursPerDay = 24
	}
	total := laytimeHours + noticePeriodHours
	return Scenario{
		LaytimeHours:        laytimeHours,
		NoticePeriodHours:   noticePeriodHours,
		TotalTimeHours:      total,
		TotalTimeDays:       total / workingHoursPerDay,
		DemurrageRatePerDay: rates.DemurragePerDay,
		DespatchRatePerDay:  rates.DespatchPerDay,
		WorkingHoursPerDay:  workingHoursPerDay,
	}
}
