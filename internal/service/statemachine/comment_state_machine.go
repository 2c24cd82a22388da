package statemachine

import (
	"fmt"

	"k8s.io/klog/v2"
)

// CommentStatus 定义导师批注的所有可能状态
type CommentStatus string

const (
	CommentStatusPending    CommentStatus = "pending"    // 待处理（初始态）
	CommentStatusIntegrated CommentStatus = "integrated" // 修订已吸纳，等待导师确认
	CommentStatusVerified   CommentStatus = "verified"   // 导师已确认（终态）
)

// CommentTransition 定义批注状态迁移
type CommentTransition struct {
	From CommentStatus
	To   CommentStatus
}

// CommentStateMachine 批注状态机
// 状态只能单调前进 pending -> integrated -> verified，不允许回退
type CommentStateMachine struct {
	allowedTransitions map[CommentTransition]bool
}

// NewCommentStateMachine 创建新的批注状态机
func NewCommentStateMachine() *CommentStateMachine {
	sm := &CommentStateMachine{
		allowedTransitions: make(map[CommentTransition]bool),
	}

	transitions := []CommentTransition{
		{CommentStatusPending, CommentStatusIntegrated},
		{CommentStatusIntegrated, CommentStatusVerified},
	}

	for _, t := range transitions {
		sm.allowedTransitions[t] = true
	}

	return sm
}

// CanTransition 检查状态迁移是否合法
func (sm *CommentStateMachine) CanTransition(from, to CommentStatus) bool {
	if from == to {
		return false // 不允许状态不变
	}
	return sm.allowedTransitions[CommentTransition{From: from, To: to}]
}

// ValidateTransition 验证状态迁移并返回错误
func (sm *CommentStateMachine) ValidateTransition(from, to CommentStatus) error {
	if !sm.CanTransition(from, to) {
		return &InvalidStateTransitionError{
			Entity: "comment",
			From:   string(from),
			To:     string(to),
		}
	}
	return nil
}

// Transition 执行状态迁移（带日志）
func (sm *CommentStateMachine) Transition(from, to CommentStatus, commentID string) error {
	if err := sm.ValidateTransition(from, to); err != nil {
		klog.V(6).Infof("批注状态迁移被拒绝: commentID=%s, %s -> %s, error=%v",
			commentID, from, to, err)
		return err
	}

	klog.V(6).Infof("批注状态迁移成功: commentID=%s, %s -> %s", commentID, from, to)
	return nil
}

// IsTerminal 判断状态是否为终态
func (sm *CommentStateMachine) IsTerminal(status CommentStatus) bool {
	return status == CommentStatusVerified
}

// InvalidStateTransitionError 无效的状态迁移错误
type InvalidStateTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid %s state transition: %s -> %s", e.Entity, e.From, e.To)
}
