package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/config"
	"sofdesk/internal/domain"
	"sofdesk/internal/service"
	"sofdesk/internal/weather"
	"sofdesk/mocks"
)

const chatForecast = `{
	"current": {
		"temperature_2m": 22.0,
		"relative_humidity_2m": 60,
		"wind_speed_10m": 12.0,
		"wind_direction_10m": 180,
		"precipitation": 0.0,
		"weather_code": 0
	},
	"daily": {
		"time": ["2024-03-01"],
		"temperature_2m_max": [24.0],
		"temperature_2m_min": [18.0],
		"precipitation_sum": [0.0],
		"wind_speed_10m_max": [15.0]
	}
}`

func newChatFixture(t *testing.T) (service.ChatService, *mocks.MockChatRepo, *mocks.MockLLMClient) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatForecast))
	}))
	t.Cleanup(srv.Close)

	weatherClient := weather.NewClient(config.WeatherConfig{BaseURL: srv.URL, TimeoutSecs: 5, CacheTTLMins: 1})
	chatRepo := new(mocks.MockChatRepo)
	primary := new(mocks.MockLLMClient)
	return service.NewChatService(chatRepo, weatherClient, primary, nil), chatRepo, primary
}

func expectStoredPair(repo *mocks.MockChatRepo) {
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()
}

func TestAskWeatherAgent(t *testing.T) {
	svc, repo, llm := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1", "What's the weather in Singapore?")
	require.NoError(t, err)

	assert.Equal(t, service.AgentWeather, msg.Agent)
	assert.Contains(t, msg.Content, "Weather at Singapore")
	assert.Contains(t, msg.Content, "Clear sky")
	llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestAskWeatherWithoutPort(t *testing.T) {
	svc, repo, _ := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1", "how is the weather today?")
	require.NoError(t, err)
	assert.Equal(t, service.AgentWeather, msg.Agent)
	assert.Contains(t, msg.Content, "Which port")
}

func TestAskNavigationAgent(t *testing.T) {
	svc, repo, _ := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1",
		"What is the distance from Singapore to Rotterdam for a container ship?")
	require.NoError(t, err)

	assert.Equal(t, service.AgentNavigation, msg.Agent)
	assert.Contains(t, msg.Content, "Singapore to Rotterdam")
	assert.Contains(t, msg.Content, "20 knots")
}

func TestAskCarbonAgent(t *testing.T) {
	svc, repo, _ := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1",
		"Estimate CO2 emissions for a bulk carrier on a 12 day voyage using vlsfo")
	require.NoError(t, err)

	assert.Equal(t, service.AgentCarbon, msg.Agent)
	assert.Contains(t, msg.Content, "bulk")
	assert.Contains(t, msg.Content, "VLSFO")
	assert.Contains(t, msg.Content, "12.0 days")
}

func TestAskChecklistAgent(t *testing.T) {
	svc, repo, _ := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1", "Show me the pre fixture checklist")
	require.NoError(t, err)

	assert.Equal(t, service.AgentChecklist, msg.Agent)
	assert.Contains(t, msg.Content, "Obtain charter party draft")
}

func TestAskPortAgent(t *testing.T) {
	svc, repo, _ := newChatFixture(t)
	expectStoredPair(repo)

	msg, err := svc.Ask(context.Background(), "s1", "Tell me about the port of Rotterdam")
	require.NoError(t, err)

	assert.Equal(t, service.AgentPorts, msg.Agent)
	assert.Contains(t, msg.Content, "NLRTM")
	assert.Contains(t, msg.Content, "Max draft 24.0 m")
}

func TestAskFallsBackToLLM(t *testing.T) {
	svc, repo, llm := newChatFixture(t)
	expectStoredPair(repo)

	llm.On("Complete", mock.Anything, mock.Anything).Return("Laytime is the agreed time for cargo operations.", nil)

	msg, err := svc.Ask(context.Background(), "s1", "Explain what laytime means")
	require.NoError(t, err)

	assert.Equal(t, service.AgentAssistant, msg.Agent)
	assert.Contains(t, msg.Content, "Laytime is the agreed time")
	llm.AssertExpectations(t)
}

func TestAskLLMUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)
	weatherClient := weather.NewClient(config.WeatherConfig{BaseURL: srv.URL})

	chatRepo := new(mocks.MockChatRepo)
	chatRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	primary := new(mocks.MockLLMClient)
	primary.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError)
	primary.On("Name").Return("gemini")
	secondary := new(mocks.MockLLMClient)
	secondary.On("Complete", mock.Anything, mock.Anything).Return("", assert.AnError)
	secondary.On("Name").Return("openai")

	svc := service.NewChatService(chatRepo, weatherClient, primary, secondary)
	_, err := svc.Ask(context.Background(), "s1", "Explain demurrage clauses in depth")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestAskEmptyMessage(t *testing.T) {
	svc, _, _ := newChatFixture(t)
	_, err := svc.Ask(context.Background(), "s1", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
