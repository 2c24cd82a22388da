package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thesisai/backend/internal/eventbus"
	"github.com/thesisai/backend/internal/model"
	"github.com/thesisai/backend/internal/repository"
	"github.com/thesisai/backend/internal/service/statemachine"
	"k8s.io/klog/v2"
)

// CommentService 导师批注的读写与状态迁移
type CommentService struct {
	commentRepo repository.AdvisorCommentRepository
	sm          *statemachine.CommentStateMachine
	bus         *eventbus.CommentEventBus
}

// NewCommentService 创建批注服务
func NewCommentService(commentRepo repository.AdvisorCommentRepository, bus *eventbus.CommentEventBus) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		sm:          statemachine.NewCommentStateMachine(),
		bus:         bus,
	}
}

// CreateCommentRequest 创建批注的输入
type CreateCommentRequest struct {
	ThesisID  string `json:"thesis_id"`
	AdvisorID string `json:"advisor_id"`
	ChapterID string `json:"chapter_id"`
	ScopeID   string `json:"scope_id"`
	RawText   string `json:"raw_text"`
}

// Create 创建批注，初始状态 pending
func (s *CommentService) Create(req CreateCommentRequest) (*model.AdvisorComment, error) {
	if strings.TrimSpace(req.RawText) == "" {
		return nil, &InvalidInputError{Field: "raw_text", Reason: "must not be empty"}
	}
	if !model.IsValidChapterID(req.ChapterID) {
		return nil, &InvalidInputError{Field: "chapter_id", Reason: "unknown chapter slot"}
	}

	comment := &model.AdvisorComment{
		ID:        uuid.NewString(),
		ThesisID:  req.ThesisID,
		AdvisorID: req.AdvisorID,
		ChapterID: req.ChapterID,
		ScopeID:   req.ScopeID,
		RawText:   req.RawText,
		Status:    model.CommentStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByThesis 按状态过滤获取批注，status 为空表示全部
func (s *CommentService) ListByThesis(thesisID, status string) ([]model.AdvisorComment, error) {
	if status == "" {
		return s.commentRepo.ListByThesis(thesisID)
	}
	return s.commentRepo.ListByThesisAndStatus(thesisID, status)
}

// Get 获取单条批注
func (s *CommentService) Get(id string) (*model.AdvisorComment, error) {
	return s.commentRepo.Get(id)
}

// Integrate 将批注置为 integrated
// 由用户显式确认触发，对账器本身从不调用
func (s *CommentService) Integrate(ctx context.Context, id string) (*model.AdvisorComment, error) {
	return s.transition(ctx, id, statemachine.CommentStatusIntegrated, eventbus.CommentEventIntegrated)
}

// Verify 导师确认批注已落实，置为 verified（终态）
func (s *CommentService) Verify(ctx context.Context, id string) (*model.AdvisorComment, error) {
	return s.transition(ctx, id, statemachine.CommentStatusVerified, eventbus.CommentEventVerified)
}

func (s *CommentService) transition(ctx context.Context, id string, to statemachine.CommentStatus, eventType eventbus.CommentEventType) (*model.AdvisorComment, error) {
	comment, err := s.commentRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.sm.Transition(statemachine.CommentStatus(comment.Status), to, comment.ID); err != nil {
		return nil, err
	}

	comment.Status = string(to)
	comment.UpdatedAt = time.Now()
	if err := s.commentRepo.Save(comment); err != nil {
		return nil, err
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, eventType, eventbus.CommentEvent{
			Type:      eventType,
			CommentID: comment.ID,
			ThesisID:  comment.ThesisID,
			ChapterID: comment.ChapterID,
		}); err != nil {
			// 通知失败不影响状态迁移本身
			klog.Errorf("发布批注事件失败: commentID=%s, error=%v", comment.ID, err)
		}
	}

	return comment, nil
}
