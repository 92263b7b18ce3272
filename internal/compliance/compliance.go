// Package compliance runs charter party sanity checks over a parsed
// Statement of Facts.
package compliance

import "sofdesk/internal/sof"

// Report groups findings by severity. Issues block a clean laytime
// statement; warnings need review; hints are standing rule reminders.
type Report struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Hints    []string `json:"hints"`
}

var ruleHints = []string{
	"NOR within limits: confirm NOR was tendered within the CP notice window and at the agreed position",
	"Laytime exceptions: verify weather working days, holidays, and shifting time are excluded per CP terms",
	"SOF accuracy: cross-check SOF timestamps against port logs and agent reports before signing",
}

// Check validates a parse result against the standing charter party
// rules. It never fails; missing data surfaces as issues or warnings.
func Check(result sof.ParseResult) Report {
	report := Report{
		Issues:   []string{},
		Warnings: []string{},
		Hints:    append([]string{}, ruleHints...),
	}

	if result.Event.NORTime == nil {
		report.Issues = append(report.Issues, "NOR tender time is missing; laytime commencement cannot be verified")
	}
	if result.Event.ArrivalTime == nil {
		report.Issues = append(report.Issues, "Arrival time is missing; cannot verify NOR was tendered after arrival")
	}
	if result.Event.DepartureTime == nil {
		report.Warnings = append(report.Warnings, "Departure time is missing; voyage may be ongoing")
	}
	if result.Event.NORTime != nil && result.Event.ArrivalTime != nil &&
		result.Event.NORTime.Before(*result.Event.ArrivalTime) {
		report.Issues = append(report.Issues, "NOR was tendered before arrival; check SOF event order")
	}

	return report
}

// Clean reports whether the result raised no issues or warnings.
func (r Report) Clean() bool {
	return len(r.Issues) == 0 && len(r.Warnings) == 0
}
