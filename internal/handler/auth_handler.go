package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles POST /api/v1/auth/token
// @Summary Issue an access token
// @Description Exchange client credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.TokenInput true "Client credentials"
// @Success 200 {object} Response{data=service.Token} "Access token"
// @Failure 400 {object} ErrorResponseBody "Missing credentials"
// @Failure 401 {object} ErrorResponseBody "Invalid credentials"
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var input service.TokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	token, err := h.authService.IssueToken(input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, token)
}
