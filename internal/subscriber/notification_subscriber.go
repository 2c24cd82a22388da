package subscriber

import (
	"context"
	"fmt"

	"github.com/thesisai/backend/internal/eventbus"
	"github.com/thesisai/backend/internal/repository"
	"k8s.io/klog/v2"
)

// MailSender 邮件发送能力
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationSubscriber 监听批注与消息事件，向相关方发送邮件通知
// 通知失败只记录日志，不影响触发事件的业务流程
type NotificationSubscriber struct {
	thesisRepo  repository.ThesisRepository
	commentRepo repository.AdvisorCommentRepository
	profileRepo repository.ProfileRepository
	mailer      MailSender
}

// NewNotificationSubscriber 创建通知订阅器
func NewNotificationSubscriber(
	thesisRepo repository.ThesisRepository,
	commentRepo repository.AdvisorCommentRepository,
	profileRepo repository.ProfileRepository,
	mailer MailSender,
) *NotificationSubscriber {
	return &NotificationSubscriber{
		thesisRepo:  thesisRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
		mailer:      mailer,
	}
}

// Register 订阅批注事件
func (s *NotificationSubscriber) Register(bus *eventbus.CommentEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.CommentEventIntegrated, s.handleCommentIntegrated)
	bus.Subscribe(eventbus.CommentEventVerified, s.handleCommentVerified)
}

// RegisterMessages 订阅消息事件
func (s *NotificationSubscriber) RegisterMessages(bus *eventbus.MessageEventBus) {
	if bus == nil {
		return
	}
	bus.Subscribe(eventbus.MessageEventSent, s.handleMessageSent)
}

// handleCommentIntegrated 学生整合批注后通知批注作者
func (s *NotificationSubscriber) handleCommentIntegrated(ctx context.Context, event eventbus.CommentEvent) error {
	comment, err := s.commentRepo.Get(event.CommentID)
	if err != nil {
		klog.Errorf("批注整合通知失败，读取批注出错: commentID=%s, error=%v", event.CommentID, err)
		return nil
	}

	thesis, err := s.thesisRepo.Get(event.ThesisID)
	if err != nil {
		klog.Errorf("批注整合通知失败，读取论文出错: thesisID=%s, error=%v", event.ThesisID, err)
		return nil
	}

	subject := fmt.Sprintf("Comment integrated: %s", thesis.Title)
	body := fmt.Sprintf("The student has integrated your comment on chapter %s of %q. You can now verify the revision.",
		event.ChapterID, thesis.Title)
	s.notify(ctx, comment.AdvisorID, subject, body)
	return nil
}

// handleCommentVerified 导师核实批注后通知论文作者
func (s *NotificationSubscriber) handleCommentVerified(ctx context.Context, event eventbus.CommentEvent) error {
	thesis, err := s.thesisRepo.Get(event.ThesisID)
	if err != nil {
		klog.Errorf("批注核实通知失败，读取论文出错: thesisID=%s, error=%v", event.ThesisID, err)
		return nil
	}

	subject := fmt.Sprintf("Comment verified: %s", thesis.Title)
	body := fmt.Sprintf("Your advisor has verified a comment on chapter %s of %q as fully addressed.",
		event.ChapterID, thesis.Title)
	s.notify(ctx, thesis.UserID, subject, body)
	return nil
}

// handleMessageSent 新消息通知论文作者，作者本人发送的不通知
func (s *NotificationSubscriber) handleMessageSent(ctx context.Context, event eventbus.MessageEvent) error {
	thesis, err := s.thesisRepo.Get(event.ThesisID)
	if err != nil {
		klog.Errorf("消息通知失败，读取论文出错: thesisID=%s, error=%v", event.ThesisID, err)
		return nil
	}
	if thesis.UserID == event.SenderID {
		return nil
	}

	subject := fmt.Sprintf("New message: %s", thesis.Title)
	body := fmt.Sprintf("You have a new message from your %s on %q.", event.SenderRole, thesis.Title)
	s.notify(ctx, thesis.UserID, subject, body)
	return nil
}

// notify 按用户ID解析邮箱并发送，无邮箱则跳过
func (s *NotificationSubscriber) notify(ctx context.Context, userID, subject, body string) {
	profile, err := s.profileRepo.Get(userID)
	if err != nil {
		klog.Errorf("通知失败，读取档案出错: userID=%s, error=%v", userID, err)
		return
	}
	if profile.Email == "" {
		klog.V(6).Infof("用户无邮箱，跳过通知: userID=%s", userID)
		return
	}

	if err := s.mailer.Send(ctx, profile.Email, subject, body); err != nil {
		klog.Errorf("发送通知邮件失败: userID=%s, error=%v", userID, err)
		return
	}
	klog.V(6).Infof("通知邮件已发送: userID=%s, subject=%s", userID, subject)
}
