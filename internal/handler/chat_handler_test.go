package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/domain"
	"sofdesk/internal/handler"
	"sofdesk/internal/service"
	"sofdesk/mocks"
)

func newChatRouter(svc service.ChatService) *gin.Engine {
	h := handler.NewChatHandler(svc)
	r := gin.New()
	r.POST("/chat", h.Ask)
	r.GET("/chat/history", h.History)
	return r
}

func TestChatAskEndpoint(t *testing.T) {
	svc := new(mocks.MockChatService)
	reply := &domain.ChatMessage{
		ID:      uuid.New(),
		Role:    domain.ChatRoleAssistant,
		Agent:   service.AgentWeather,
		Content: "Weather at Singapore: Clear sky",
	}
	svc.On("Ask", mock.Anything, "s1", "What's the weather in Singapore?").Return(reply, nil)

	rec := postJSON(newChatRouter(svc), "/chat", handler.AskRequest{
		SessionID: "s1",
		Message:   "What's the weather in Singapore?",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var got domain.ChatMessage
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, service.AgentWeather, got.Agent)
	svc.AssertExpectations(t)
}

func TestChatAskEndpointMissingMessage(t *testing.T) {
	svc := new(mocks.MockChatService)
	rec := postJSON(newChatRouter(svc), "/chat", gin.H{"session_id": "s1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	svc.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything, mock.Anything)
}

func TestChatAskEndpointLLMUnavailable(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrLLMUnavailable)

	rec := postJSON(newChatRouter(svc), "/chat", handler.AskRequest{Message: "Explain laytime"})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "LLM_UNAVAILABLE", env.Error.Code)
}

func TestChatHistoryEndpoint(t *testing.T) {
	svc := new(mocks.MockChatService)
	svc.On("History", mock.Anything, "s1", 0, 20).
		Return([]domain.ChatMessage{{SessionID: "s1", Role: domain.ChatRoleUser, Content: "hi"}}, 1, nil)

	rec := get(newChatRouter(svc), "/chat/history?session_id=s1")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)
	svc.AssertExpectations(t)
}
