package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofdesk/internal/service"
)

// ChatHandler handles assistant conversation endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// AskRequest is the request body for assistant questions.
type AskRequest struct {
	SessionID string `json:"session_id" example:"2f5c0b8e-ops-desk"`
	Message   string `json:"message" binding:"required" example:"What's the weather in Singapore?"`
}

// Ask handles POST /api/v1/chat
// @Summary Ask the chartering assistant
// @Description Route a question to the specialist agents (weather, ports, navigation, carbon, checklist) or the language model fallback
// @Tags chat
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} Response{data=domain.ChatMessage} "Assistant reply"
// @Failure 400 {object} ErrorResponseBody "Empty message"
// @Failure 503 {object} ErrorResponseBody "No language model provider available"
// @Security BearerAuth
// @Router /chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	msg, err := h.chatService.Ask(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, msg)
}

// History handles GET /api/v1/chat/history
// @Summary Get conversation history
// @Description List messages for a session, oldest first, or recent messages across sessions when no session is given
// @Tags chat
// @Produce json
// @Param session_id query string false "Session ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ChatMessage,meta=PagMeta} "Messages"
// @Security BearerAuth
// @Router /chat/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	offset, limit := parsePagination(c)

	msgs, total, err := h.chatService.History(c.Request.Context(), c.Query("session_id"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, msgs, PagMeta{Total: total, Offset: offset, Limit: limit})
}
