package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
	"sofdesk/internal/service"
	"sofdesk/internal/sof"
	"sofdesk/mocks"
)

func sampleParseResult() sof.ParseResult {
	parser := sof.NewParser(sof.DefaultPatternTable(), sof.DefaultRates())
	return parser.Parse(`Vessel: Coral Queen
Port: Rotterdam
NOR: 01/03/2024, 08:00
Departure: 02/03/2024, 14:00`)
}

func TestExplainBuildsPromptFromOutcome(t *testing.T) {
	primary := new(mocks.MockLLMClient)
	var captured port.CompletionInput
	primary.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(port.CompletionInput)
		}).
		Return("The vessel spent 30 hours in port.", nil)

	svc := service.NewExplainService(primary, nil)
	narrative, err := svc.Explain(context.Background(), sampleParseResult())
	require.NoError(t, err)

	assert.Contains(t, narrative, "30 hours")
	assert.Contains(t, captured.Prompt, "Coral Queen")
	assert.Contains(t, captured.Prompt, "Total time in port: 30.0 hours")
	assert.Contains(t, captured.Prompt, "Laytime status: indeterminate")
	assert.Contains(t, captured.System, "laytime analyst")
}

func TestExplainFailsOverToSecondary(t *testing.T) {
	primary := new(mocks.MockLLMClient)
	primary.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError)
	primary.On("Name").Return("gemini")

	secondary := new(mocks.MockLLMClient)
	secondary.On("Complete", mock.Anything, mock.Anything).Return("Narrative from fallback.", nil)

	svc := service.NewExplainService(primary, secondary)
	narrative, err := svc.Explain(context.Background(), sampleParseResult())
	require.NoError(t, err)
	assert.Equal(t, "Narrative from fallback.", narrative)
}

func TestExplainNoProvider(t *testing.T) {
	svc := service.NewExplainService(nil, nil)
	_, err := svc.Explain(context.Background(), sampleParseResult())
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestExplainAllProvidersFail(t *testing.T) {
	primary := new(mocks.MockLLMClient)
	primary.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError)
	primary.On("Name").Return("gemini")

	secondary := new(mocks.MockLLMClient)
	secondary.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError)
	secondary.On("Name").Return("openai")

	svc := service.NewExplainService(primary, secondary)
	_, err := svc.Explain(context.Background(), sampleParseResult())
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}
