package statemachine

import (
	"k8s.io/klog/v2"
)

// OnboardingStep 新用户引导步骤
type OnboardingStep string

const (
	StepWelcome      OnboardingStep = "welcome"
	StepProfile      OnboardingStep = "profile"
	StepThesisSetup  OnboardingStep = "thesis_setup"
	StepFirstChapter OnboardingStep = "first_chapter"
	StepDone         OnboardingStep = "done"
)

// onboardingOrder 步骤只能按此顺序前进
var onboardingOrder = []OnboardingStep{
	StepWelcome,
	StepProfile,
	StepThesisSetup,
	StepFirstChapter,
	StepDone,
}

// OnboardingStateMachine 引导流程状态机，只允许相邻步骤前进
type OnboardingStateMachine struct{}

// NewOnboardingStateMachine 创建引导状态机
func NewOnboardingStateMachine() *OnboardingStateMachine {
	return &OnboardingStateMachine{}
}

// Next 返回某步骤的下一步，终点返回自身
func (sm *OnboardingStateMachine) Next(step OnboardingStep) OnboardingStep {
	for i, s := range onboardingOrder {
		if s == step && i+1 < len(onboardingOrder) {
			return onboardingOrder[i+1]
		}
	}
	return StepDone
}

// CanTransition 检查步骤迁移是否合法
func (sm *OnboardingStateMachine) CanTransition(from, to OnboardingStep) bool {
	if from == to {
		return false
	}
	return sm.Next(from) == to
}

// ValidateTransition 验证步骤迁移并返回错误
func (sm *OnboardingStateMachine) ValidateTransition(from, to OnboardingStep) error {
	if !sm.CanTransition(from, to) {
		return &InvalidStateTransitionError{
			Entity: "onboarding",
			From:   string(from),
			To:     string(to),
		}
	}
	return nil
}

// Transition 执行步骤迁移（带日志）
func (sm *OnboardingStateMachine) Transition(from, to OnboardingStep, userID string) error {
	if err := sm.ValidateTransition(from, to); err != nil {
		klog.V(6).Infof("引导步骤迁移被拒绝: userID=%s, %s -> %s, error=%v",
			userID, from, to, err)
		return err
	}

	klog.V(6).Infof("引导步骤迁移成功: userID=%s, %s -> %s", userID, from, to)
	return nil
}

// IsValidStep 校验步骤取值
func IsValidStep(step OnboardingStep) bool {
	for _, s := range onboardingOrder {
		if s == step {
			return true
		}
	}
	return false
}
