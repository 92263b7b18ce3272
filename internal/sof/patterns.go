package sof

import (
	"fmt"
	"regexp"
)

// PatternEntry declares the ordered regex alternatives for one field.
type PatternEntry struct {
	Field    Field
	Patterns []string
}

// PatternTable holds the compiled per-field pattern alternatives. It is
// immutable after construction and safe for concurrent use.
type PatternTable struct {
	order    []Field
	compiled map[Field][]*regexp.Regexp
}

// NewPatternTable compiles a pattern table. Every pattern is compiled
// case-insensitively. A malformed pattern or duplicate/empty field is a
// configuration error and is rejected here, never per-document.
func NewPatternTable(entries []PatternEntry) (*PatternTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("pattern table: no entries")
	}
	t := &PatternTable{
		order:    make([]Field, 0, len(entries)),
		compiled: make(map[Field][]*regexp.Regexp, len(entries)),
	}
	for _, e := range entries {
		if e.Field == "" {
			return nil, fmt.Errorf("pattern table: entry with empty field name")
		}
		if _, dup := t.compiled[e.Field]; dup {
			return nil, fmt.Errorf("pattern table: duplicate field %q", e.Field)
		}
		if len(e.Patterns) == 0 {
			return nil, fmt.Errorf("pattern table: field %q has no patterns", e.Field)
		}
		res := make([]*regexp.Regexp, 0, len(e.Patterns))
		for _, p := range e.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("pattern table: field %q pattern %q: %w", e.Field, p, err)
			}
			res = append(res, re)
		}
		t.order = append(t.order, e.Field)
		t.compiled[e.Field] = res
	}
	return t, nil
}

// Fields returns the declared field order.
func (t *PatternTable) Fields() []Field {
	out := make([]Field, len(t.order))
	copy(out, t.order)
	return out
}

const (
	dmyTimestamp = `[0-9]{1,2}[/\-][0-9]{1,2}[/\-][0-9]{2,4}[,\s]+[0-9]{1,2}:[0-9]{2}`
	decimalQty   = `[0-9,]+(?:\.[0-9]+)?`
)

// DefaultPatternTable returns the standard SOF field patterns. Pattern
// order encodes precedence; all alternatives are still tried so later
// patterns can contribute additional candidates.
func DefaultPatternTable() *PatternTable {
	t, err := NewPatternTable([]PatternEntry{
		{FieldVesselName, []string{
			`vessel[:\s]+([A-Za-z\s\-]+?)(?:\n|$)`,
			`m/v\s+([A-Za-z\s\-]+?)(?:\n|$)`,
			`m\.v\.\s+([A-Za-z\s\-]+?)(?:\n|$)`,
			`ship[:\s]+([A-Za-z\s\-]+?)(?:\n|$)`,
		}},
		{FieldVoyageNumber, []string{
			`voyage[:\s]+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
			`voy\s+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
			`voyage\s+no[:\s]+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
		}},
		{FieldArrivalTime, []string{
			`arrival[:\s]+(` + dmyTimestamp + `)`,
			`arrived[:\s]+(` + dmyTimestamp + `)`,
			`eta[:\s]+(` + dmyTimestamp + `)`,
		}},
		{FieldDepartureTime, []string{
			`departure[:\s]+(` + dmyTimestamp + `)`,
			`departed[:\s]+(` + dmyTimestamp + `)`,
			`etd[:\s]+(` + dmyTimestamp + `)`,
		}},
		{FieldNORTime, []string{
			`nor[:\s]+(` + dmyTimestamp + `)`,
			`notice\s+of\s+readiness[:\s]+(` + dmyTimestamp + `)`,
			`readiness[:\s]+(` + dmyTimestamp + `)`,
		}},
		{FieldLaytimeAllowed, []string{
			`laytime[:\s]+([0-9]+(?:\.[0-9]+)?)\s*(hours?|days?)`,
			`lay\s+time[:\s]+([0-9]+(?:\.[0-9]+)?)\s*(hours?|days?)`,
			`allowed\s+time[:\s]+([0-9]+(?:\.[0-9]+)?)\s*(hours?|days?)`,
		}},
		{FieldCargoQuantity, []string{
			`cargo[:\s]+(` + decimalQty + `)\s*(mt|tons?|metric\s+tons?)`,
			`quantity[:\s]+(` + decimalQty + `)\s*(mt|tons?|metric\s+tons?)`,
			`loaded[:\s]+(` + decimalQty + `)\s*(mt|tons?|metric\s+tons?)`,
			`discharged[:\s]+(` + decimalQty + `)\s*(mt|tons?|metric\s+tons?)`,
		}},
		{FieldBerthInfo, []string{
			`berth[:\s]+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
			`terminal[:\s]+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
			`quay[:\s]+([A-Za-z0-9\s\-]+?)(?:\n|$)`,
		}},
		{FieldPortName, []string{
			`port[:\s]+([A-Za-z\s]+?)(?:\n|$)`,
			`at\s+([A-Za-z\s]+?)(?:\n|$)`,
			`in\s+([A-Za-z\s]+?)(?:\n|$)`,
		}},
	})
	if err != nil {
		// The default table is fixed at compile time; failing to build it
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return t
}
