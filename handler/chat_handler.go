package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trungle-dev/docqa-be/service"
	"github.com/trungle-dev/docqa-be/types"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// HandleChat answers a question about a previously uploaded document.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid request body"})
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Filename, req.Question)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{Answer: answer})
}
