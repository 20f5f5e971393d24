package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-chat-memory/internal/application"
	"github.com/oksasatya/go-chat-memory/pkg/response"
)

type ChatHandler struct {
	Chat   *application.ChatService
	Memory *application.MemoryService
	Logger *logrus.Logger
}

func NewChatHandler(chat *application.ChatService, memory *application.MemoryService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Chat: chat, Memory: memory, Logger: logger}
}

// Ask GET /api/ask?question=...
// Requires APIKeyAuth; answers with short-term context and records both turns.
func (h *ChatHandler) Ask(c *gin.Context) {
	userID := c.GetString("userID")
	question := c.Query("question")
	if question == "" {
		response.Error[any](c, http.StatusBadRequest, "question is required", nil)
		return
	}

	answer, err := h.Chat.Ask(c.Request.Context(), userID, question)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("ask failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to process the question", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"answer": answer}, "answer generated")
}

// History GET /api/history
// Returns the caller's surviving turns in chronological order.
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.GetString("userID")

	turns, err := h.Memory.History(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("history failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load history", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"history": turns}, "history")
}
