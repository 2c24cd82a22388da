package statemachine

import (
	"errors"
	"testing"
)

func TestCommentStateMachineMonotonic(t *testing.T) {
	sm := NewCommentStateMachine()

	cases := []struct {
		from, to CommentStatus
		allowed  bool
	}{
		{CommentStatusPending, CommentStatusIntegrated, true},
		{CommentStatusIntegrated, CommentStatusVerified, true},
		// 不允许回退
		{CommentStatusIntegrated, CommentStatusPending, false},
		{CommentStatusVerified, CommentStatusIntegrated, false},
		{CommentStatusVerified, CommentStatusPending, false},
		// 不允许跳级
		{CommentStatusPending, CommentStatusVerified, false},
		// 不允许原地迁移
		{CommentStatusPending, CommentStatusPending, false},
	}

	for _, c := range cases {
		if got := sm.CanTransition(c.from, c.to); got != c.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestCommentStateMachineValidateTransition(t *testing.T) {
	sm := NewCommentStateMachine()

	err := sm.ValidateTransition(CommentStatusVerified, CommentStatusPending)
	var terr *InvalidStateTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidStateTransitionError, got %v", err)
	}

	if err := sm.ValidateTransition(CommentStatusPending, CommentStatusIntegrated); err != nil {
		t.Fatalf("expected valid transition, got %v", err)
	}
}

func TestCommentStateMachineTerminal(t *testing.T) {
	sm := NewCommentStateMachine()
	if !sm.IsTerminal(CommentStatusVerified) {
		t.Error("verified should be terminal")
	}
	if sm.IsTerminal(CommentStatusPending) || sm.IsTerminal(CommentStatusIntegrated) {
		t.Error("pending/integrated should not be terminal")
	}
}

func TestOnboardingStateMachineForwardOnly(t *testing.T) {
	sm := NewOnboardingStateMachine()

	if !sm.CanTransition(StepWelcome, StepProfile) {
		t.Error("welcome -> profile should be allowed")
	}
	if sm.CanTransition(StepProfile, StepWelcome) {
		t.Error("backward transition should be rejected")
	}
	if sm.CanTransition(StepWelcome, StepThesisSetup) {
		t.Error("skipping a step should be rejected")
	}
	if next := sm.Next(StepDone); next != StepDone {
		t.Errorf("done should be a fixed point, got %s", next)
	}
}
