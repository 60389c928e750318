package controllers

import (
	"context"
	"net/http"
	"strings"

	"reservas/dto"

	"github.com/gin-gonic/gin"
)

type ChatAssistant interface {
	Reply(ctx context.Context, req dto.ChatRequest) dto.ChatReply
}

type ChatController struct {
	assistant ChatAssistant
}

func NewChatController(assistant ChatAssistant) *ChatController {
	return &ChatController{assistant: assistant}
}

// Chat godoc
// @Summary Asistente de reservas
// @Tags chatbot
// @Param body body dto.ChatRequest true "Mensaje e historial"
// @Success 200 {object} dto.ChatReply
// @Failure 400 {object} map[string]string
// @Router /chatbot/ [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vacio"})
		return
	}
	c.JSON(http.StatusOK, cc.assistant.Reply(c.Request.Context(), req))
}
