// Package checklist serves the standing operational checklists per
// voyage stage.
package checklist

import (
	"strings"

	"sofdesk/internal/domain"
)

var templates = map[domain.VoyageStage][]string{
	domain.StagePreFixture: {
		"Obtain charter party draft",
		"Review vessel certificates (class, P&I, statutory)",
		"Confirm cargo specs and load/discharge ports",
		"Nominate vessel and issue NOR requirements",
	},
	domain.StageOnVoyage: {
		"Issue NOR on arrival per CP terms",
		"Record SOF events with timestamps",
		"Monitor weather and routing",
		"Exchange arrival/departure reports",
	},
	domain.StagePostVoyage: {
		"Prepare laytime statement",
		"Issue demurrage/despatch invoice",
		"Archive CP, NOR, SOF, B/L copies",
		"Submit performance and bunker reports",
	},
}

// NormalizeStage maps loose user input ("Pre Fixture", "on-voyage") to
// a canonical stage key.
func NormalizeStage(stage string) domain.VoyageStage {
	s := strings.ToLower(strings.TrimSpace(stage))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return domain.VoyageStage(s)
}

// ForStage returns a copy of the checklist for a stage, or
// domain.ErrUnknownStage.
func ForStage(stage string) ([]string, error) {
	items, ok := templates[NormalizeStage(stage)]
	if !ok {
		return nil, domain.ErrUnknownStage
	}
	out := make([]string, len(items))
	copy(out, items)
	return out, nil
}

// Stages lists the known stages in voyage order.
func Stages() []domain.VoyageStage {
	return []domain.VoyageStage{domain.StagePreFixture, domain.StageOnVoyage, domain.StagePostVoyage}
}
