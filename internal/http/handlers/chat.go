package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/http/response"
	"github.com/animalloo/animalloo-backend/internal/services"
)

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatReq struct {
	Message string `json:"message"`
}

// POST /api/chat
// Errors use {"error": "<message>"} rather than the envelope.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondPlainError(c, fmt.Errorf("%w: %v", services.ErrInvalidRequest, err))
		return
	}
	answer, err := h.chat.Reply(c.Request.Context(), req.Message)
	if err != nil {
		response.RespondPlainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"response": answer})
}
