package handlers

import (
	"errors"
	"net/http"

	"infibot/models"
	"infibot/services/conversation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversation controller over HTTP.
type ChatHandler struct {
	Manager *conversation.Manager
	Logger  *zap.Logger
}

func NewChatHandler(manager *conversation.Manager, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Manager: manager, Logger: logger}
}

type sessionResponse struct {
	SessionID string                   `json:"sessionId"`
	State     models.ConversationState `json:"state"`
	Messages  []models.ChatMessage     `json:"messages"`
}

func sessionBody(conv *conversation.Conversation) sessionResponse {
	return sessionResponse{
		SessionID: conv.ID,
		State:     conv.State(),
		Messages:  conv.Messages(),
	}
}

// CreateSession starts a new conversation and returns its opening prompts.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	conv, err := h.Manager.Create(c.Request.Context())
	if err != nil {
		var initErr *conversation.InitError
		if errors.As(err, &initErr) {
			h.Logger.Error("conversation initialization failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to initialize chat, please try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, sessionBody(conv))
}

// GetSession returns the full history and state of a session.
func (h *ChatHandler) GetSession(c *gin.Context) {
	conv, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionBody(conv))
}

// PostMessage submits one free-text user input.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	conv, ok := h.session(c)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := conv.Submit(c.Request.Context(), input.Text); err != nil {
		h.operationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(conv))
}

// BookEvent moves a chosen event into the quantity step.
func (h *ChatHandler) BookEvent(c *gin.Context) {
	conv, ok := h.session(c)
	if !ok {
		return
	}

	var input struct {
		EventID string `json:"eventId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := conv.BookEvent(c.Request.Context(), input.EventID); err != nil {
		h.operationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(conv))
}

// SelectQuantity is the structured ticket-quantity pick.
func (h *ChatHandler) SelectQuantity(c *gin.Context) {
	conv, ok := h.session(c)
	if !ok {
		return
	}

	var input struct {
		EventID  string `json:"eventId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := conv.SelectTicketQuantity(c.Request.Context(), input.EventID, input.Quantity); err != nil {
		h.operationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(conv))
}

// SubmitUserInfo runs the terminal booking transition.
func (h *ChatHandler) SubmitUserInfo(c *gin.Context) {
	conv, ok := h.session(c)
	if !ok {
		return
	}

	var input models.UserInfo
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := conv.SubmitUserInfo(c.Request.Context(), input); err != nil {
		h.operationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionBody(conv))
}

// DeleteSession drops a session.
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	h.Manager.Delete(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func (h *ChatHandler) session(c *gin.Context) (*conversation.Conversation, bool) {
	conv, err := h.Manager.Get(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return conv, true
}

func (h *ChatHandler) operationError(c *gin.Context, err error) {
	if errors.Is(err, conversation.ErrBusy) {
		c.JSON(http.StatusConflict, gin.H{"error": "the assistant is still processing your previous message"})
		return
	}
	h.Logger.Error("conversation operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
}
