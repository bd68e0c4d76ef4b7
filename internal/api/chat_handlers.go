package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitatrack/internal/ai"
	"vitatrack/internal/auth"
	"vitatrack/internal/models"
	"vitatrack/internal/monitoring"
)

// historyLimit caps the chat history endpoint.
const historyLimit = 50

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat sends a message to the AI coach and stores the exchange.
func (s *Server) Chat(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	monitoring.ChatRequests.Inc()
	s.monitor.IncrCounter("chat_messages")

	response := ai.UnavailableMessage
	if s.provider != nil {
		reply, err := s.provider.Complete(c.Request.Context(), ai.CoachMessages(user, req.Message))
		if err != nil {
			s.log.Warn("coach completion failed", zap.String("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "coach is temporarily unavailable"})
			return
		}
		response = reply
	}

	msg := models.NewChatMessage(user.ID, req.Message, response)
	if err := s.db.Create(msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save chat message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response, "timestamp": msg.Timestamp})
}

// ChatHistory returns the most recent coach exchanges, newest first.
func (s *Server) ChatHistory(c *gin.Context) {
	var messages []models.ChatMessage
	if err := s.db.Where("user_id = ?", auth.UserID(c)).
		Order("timestamp desc").Limit(historyLimit).Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, messages)
}
