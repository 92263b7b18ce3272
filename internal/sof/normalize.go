package sof

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Event holds the canonical values derived from a RawExtraction. Absent
// fields are nil; normalization never fails a parse, it only leaves a
// value unset.
type Event struct {
	ArrivalTime         *time.Time `json:"arrival_time,omitempty"`
	DepartureTime       *time.Time `json:"departure_time,omitempty"`
	NORTime             *time.Time `json:"nor_time,omitempty"`
	LaytimeAllowedHours *float64   `json:"laytime_allowed_hours,omitempty"`
	CargoTons           *float64   `json:"cargo_tons,omitempty"`
}

// Candidate timestamps are day-first with an optional time component.
// Order matters: combined layouts are tried before date-only layouts.
var (
	dateTimeLayouts = []string{
		"2/1/2006, 15:04",
		"2-1-2006, 15:04",
		"2006-1-2, 15:04",
		"2/1/06, 15:04",
		"2-1-06, 15:04",
	}
	dateOnlyLayouts = []string{
		"2/1/2006",
		"2-1-2006",
		"2006-1-2",
		"2/1/06",
		"2-1-06",
	}

	laytimeQtyRe = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(hours?|days?)`)
	cargoQtyRe   = regexp.MustCompile(`([0-9,]+(?:\.[0-9]+)?)`)
)

// parseTimestamp tries the combined layouts then the date-only layouts.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseLaytime converts a "<number> <unit>" string to hours. Day units
// are multiplied by 24.
func parseLaytime(s string) (float64, bool) {
	m := laytimeQtyRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if strings.Contains(strings.ToLower(m[2]), "day") {
		return value * 24, true
	}
	return value, true
}

// parseCargoQuantity converts a decimal with optional thousands
// separators to metric tons.
func parseCargoQuantity(s string) (float64, bool) {
	m := cargoQtyRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// normalizeEvent derives the canonical event from a raw extraction.
// Policy: only the first candidate per field is attempted; later
// candidates are ignored. A candidate that matches no known format
// leaves the field absent, with a diagnostic for temporal fields.
func normalizeEvent(raw RawExtraction) (Event, []Diagnostic) {
	var ev Event
	var diags []Diagnostic

	normalizeTime := func(field Field, dst **time.Time) {
		s, ok := raw.first(field)
		if !ok {
			return
		}
		t, ok := parseTimestamp(s)
		if !ok {
			diags = append(diags, Diagnostic{
				Code:   DiagDateTimeParseFailure,
				Field:  field,
				Detail: "candidate " + strconv.Quote(s) + " matched no known format",
			})
			return
		}
		*dst = &t
	}

	normalizeTime(FieldArrivalTime, &ev.ArrivalTime)
	normalizeTime(FieldDepartureTime, &ev.DepartureTime)
	normalizeTime(FieldNORTime, &ev.NORTime)

	if s, ok := raw.first(FieldLaytimeAllowed); ok {
		if hours, ok := parseLaytime(s); ok {
			ev.LaytimeAllowedHours = &hours
		}
	}
	if s, ok := raw.first(FieldCargoQuantity); ok {
		if tons, ok := parseCargoQuantity(s); ok {
			ev.CargoTons = &tons
		}
	}
	return ev, diags
}
