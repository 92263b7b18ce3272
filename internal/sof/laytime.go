package sof

// LaytimeStatus classifies the outcome of the laytime clock.
type LaytimeStatus string

const (
	LaytimeIndeterminate LaytimeStatus = "indeterminate"
	LaytimeWithinLimit   LaytimeStatus = "within_limit"
	LaytimeExceeded      LaytimeStatus = "exceeded"
)

// LaytimeResult holds the derived laytime figures. The clock runs from
// NOR tender to departure; arrival is reported but never enters the
// computation, per chartering convention.
type LaytimeResult struct {
	Status              LaytimeStatus `json:"laytime_status"`
	TotalHours          *float64      `json:"total_time_hours,omitempty"`
	TotalDays           *float64      `json:"total_time_days,omitempty"`
	LaytimeAllowedHours *float64      `json:"laytime_allowed_hours,omitempty"`
	LaytimeAllowedDays  *float64      `json:"laytime_allowed_days,omitempty"`
	SavedHours          *float64      `json:"time_saved_hours,omitempty"`
	SavedDays           *float64      `json:"time_saved_days,omitempty"`
	ExceededHours       *float64      `json:"time_exceeded_hours,omitempty"`
	ExceededDays        *float64      `json:"time_exceeded_days,omitempty"`
	CargoRatePerHour    *float64      `json:"cargo_rate_mt_per_hour,omitempty"`
	CargoRatePerDay     *float64      `json:"cargo_rate_mt_per_day,omitempty"`
}

// calculateLaytime derives the laytime result from a normalized event.
// Missing NOR or departure leaves the result indeterminate. A negative
// NOR-to-departure interval signals misparsed dates and is reported as
// indeterminate with a diagnostic, never as a negative duration.
func calculateLaytime(ev Event) (LaytimeResult, []Diagnostic) {
	res := LaytimeResult{Status: LaytimeIndeterminate}
	var diags []Diagnostic

	if ev.NORTime == nil || ev.DepartureTime == nil {
		return res, nil
	}

	totalHours := ev.DepartureTime.Sub(*ev.NORTime).Hours()
	if totalHours < 0 {
		diags = append(diags, Diagnostic{
			Code:   DiagReversedInterval,
			Detail: "departure precedes notice of readiness",
		})
		return res, diags
	}

	totalDays := totalHours / 24
	res.TotalHours = &totalHours
	res.TotalDays = &totalDays

	if ev.LaytimeAllowedHours != nil {
		allowed := *ev.LaytimeAllowedHours
		allowedDays := allowed / 24
		res.LaytimeAllowedHours = &allowed
		res.LaytimeAllowedDays = &allowedDays

		if totalHours <= allowed {
			res.Status = LaytimeWithinLimit
			saved := allowed - totalHours
			savedDays := saved / 24
			res.SavedHours = &saved
			res.SavedDays = &savedDays
		} else {
			res.Status = LaytimeExceeded
			exceeded := totalHours - allowed
			exceededDays := exceeded / 24
			res.ExceededHours = &exceeded
			res.ExceededDays = &exceededDays
		}
	}

	if ev.CargoTons != nil && totalHours > 0 {
		perHour := *ev.CargoTons / totalHours
		perDay := *ev.CargoTons / totalDays
		res.CargoRatePerHour = &perHour
		res.CargoRatePerDay = &perDay
	}
	return res, diags
}
