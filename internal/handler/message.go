package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thesisai/backend/internal/service"
)

// MessageHandler 师生消息接口
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler 创建消息处理器
func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	SenderRole string `json:"sender_role" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

// Send 在论文会话中发送一条消息
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.Send(service.SendMessageRequest{
		ThesisID:   c.Param("id"),
		SenderID:   userID,
		SenderRole: req.SenderRole,
		Body:       req.Body,
	})
	if err != nil {
		var inputErr *service.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListByThesis 获取论文会话消息
func (h *MessageHandler) ListByThesis(c *gin.Context) {
	messages, err := h.service.ListByThesis(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkRead 将他人发送的消息置为已读
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.service.MarkRead(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": count})
}
