package service

import (
	"context"
	"strings"
	"time"

	"github.com/thesisai/backend/internal/eventbus"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
	"k8s.io/klog/v2"
)

// MessageService 师生站内消息
type MessageService struct {
	messageRepo repository.MessageRepository
	bus         *eventbus.MessageEventBus
}

// NewMessageService 创建消息服务
func NewMessageService(messageRepo repository.MessageRepository, bus *eventbus.MessageEventBus) *MessageService {
	return &MessageService{messageRepo: messageRepo, bus: bus}
}

// SendMessageRequest 发送消息的输入
type SendMessageRequest struct {
	ThesisID   string `json:"thesis_id"`
	SenderID   string `json:"sender_id"`
	SenderRole string `json:"sender_role"`
	Body       string `json:"body"`
}

// Send 发送消息
func (s *MessageService) Send(req SendMessageRequest) (*model.Message, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, &InvalidInputError{Field: "body", Reason: "must not be empty"}
	}
	if _, err := model.ParseRole(req.SenderRole); err != nil {
		return nil, &InvalidInputError{Field: "sender_role", Reason: err.Error()}
	}

	msg := &model.Message{
		ThesisID:   req.ThesisID,
		SenderID:   req.SenderID,
		SenderRole: req.SenderRole,
		Body:       req.Body,
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	if s.bus != nil {
		if err := s.bus.Publish(context.Background(), eventbus.MessageEventSent, eventbus.MessageEvent{
			Type:       eventbus.MessageEventSent,
			ThesisID:   msg.ThesisID,
			SenderID:   msg.SenderID,
			SenderRole: msg.SenderRole,
		}); err != nil {
			// 通知失败不影响消息本身
			klog.Errorf("发布消息事件失败: thesisID=%s, error=%v", msg.ThesisID, err)
		}
	}
	return msg, nil
}

// ListByThesis 按时间顺序获取会话
func (s *MessageService) ListByThesis(thesisID string) ([]model.Message, error) {
	return s.messageRepo.ListByThesis(thesisID)
}

// MarkRead 将他人发送的消息置为已读，返回影响条数
func (s *MessageService) MarkRead(thesisID, readerID string) (int64, error) {
	return s.messageRepo.MarkRead(thesisID, readerID)
}
