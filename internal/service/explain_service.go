package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
	"sofdesk/internal/sof"
)

const explainSystemPrompt = "You are a laytime analyst on a ship chartering desk. " +
	"Explain parse outcomes in plain commercial English for operations staff. " +
	"Be concise and concrete; do not invent figures that are not in the summary."

// ExplainService produces a language model narrative of a parse outcome.
type ExplainService interface {
	Explain(ctx context.Context, result sof.ParseResult) (string, error)
}

type explainService struct {
	primary   port.LLMClient
	secondary port.LLMClient
}

// NewExplainService creates a new ExplainService. Either client may be
// nil; with no provider configured Explain returns ErrLLMUnavailable.
func NewExplainService(primary, secondary port.LLMClient) ExplainService {
	return &explainService{primary: primary, secondary: secondary}
}

func (s *explainService) Explain(ctx context.Context, result sof.ParseResult) (string, error) {
	if s.primary == nil {
		return "", domain.ErrLLMUnavailable
	}

	input := port.CompletionInput{
		System: explainSystemPrompt,
		Prompt: buildExplainPrompt(result),
	}

	reply, err := s.primary.Complete(ctx, input)
	if err == nil {
		return reply, nil
	}
	log.Printf("explainService.Explain: %s provider failed: %v", s.primary.Name(), err)

	if s.secondary != nil {
		reply, err2 := s.secondary.Complete(ctx, input)
		if err2 == nil {
			return reply, nil
		}
		log.Printf("explainService.Explain: %s fallback failed: %v", s.secondary.Name(), err2)
		err = errors.Join(err, err2)
	}
	return "", fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
}

// buildExplainPrompt summarizes the parse outcome as plain text so the
// model never sees raw document JSON.
func buildExplainPrompt(result sof.ParseResult) string {
	var b strings.Builder
	b.WriteString("Explain this Statement of Facts laytime outcome:\n")

	if vals := result.Extracted[sof.FieldVesselName]; len(vals) > 0 {
		fmt.Fprintf(&b, "Vessel: %s\n", vals[0])
	}
	if vals := result.Extracted[sof.FieldPortName]; len(vals) > 0 {
		fmt.Fprintf(&b, "Port: %s\n", vals[0])
	}

	fmt.Fprintf(&b, "Laytime status: %s\n", result.Laytime.Status)
	if result.Laytime.TotalHours != nil {
		fmt.Fprintf(&b, "Total time in port: %.1f hours\n", *result.Laytime.TotalHours)
	}
	if result.Laytime.LaytimeAllowedHours != nil {
		fmt.Fprintf(&b, "Laytime allowed: %.1f hours\n", *result.Laytime.LaytimeAllowedHours)
	}
	if result.Laytime.ExceededHours != nil {
		fmt.Fprintf(&b, "Time exceeded: %.1f hours\n", *result.Laytime.ExceededHours)
	}
	if result.Financial.DemurrageAmountUSD != nil {
		fmt.Fprintf(&b, "Estimated demurrage: USD %.2f\n", *result.Financial.DemurrageAmountUSD)
	}
	if result.Financial.DespatchAmountUSD != nil {
		fmt.Fprintf(&b, "Estimated despatch: USD %.2f\n", *result.Financial.DespatchAmountUSD)
	}
	if result.Financial.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", result.Financial.Note)
	}
	fmt.Fprintf(&b, "Parse confidence: %.2f\n", result.Confidence)

	if len(result.Diagnostics) > 0 {
		b.WriteString("Diagnostics:\n")
		for _, d := range result.Diagnostics {
			fmt.Fprintf(&b, "- %s: %s\n", d.Code, d.Detail)
		}
	}
	return b.String()
}
