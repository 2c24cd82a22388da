package eventbus

import (
	"context"
	"errors"
	"testing"
)

func TestBusPublishBroadcast(t *testing.T) {
	bus := NewCommentEventBus()
	calledA := false
	calledB := false

	bus.Subscribe(CommentEventIntegrated, func(ctx context.Context, event CommentEvent) error {
		calledA = true
		return nil
	})
	bus.Subscribe(CommentEventIntegrated, func(ctx context.Context, event CommentEvent) error {
		calledB = true
		return nil
	})

	if err := bus.Publish(context.Background(), CommentEventIntegrated, CommentEvent{Type: CommentEventIntegrated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !calledA || !calledB {
		t.Fatalf("expected handlers to be called")
	}
}

func TestBusTypeIsolation(t *testing.T) {
	bus := NewCommentEventBus()
	called := false

	bus.Subscribe(CommentEventVerified, func(ctx context.Context, event CommentEvent) error {
		called = true
		return nil
	})

	if err := bus.Publish(context.Background(), CommentEventIntegrated, CommentEvent{Type: CommentEventIntegrated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("expected handler for another event type not to be called")
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewCommentEventBus()
	called := false
	unsubscribe := bus.Subscribe(CommentEventIntegrated, func(ctx context.Context, event CommentEvent) error {
		called = true
		return nil
	})
	unsubscribe()

	if err := bus.Publish(context.Background(), CommentEventIntegrated, CommentEvent{Type: CommentEventIntegrated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatalf("expected handler to be unsubscribed")
	}
}

func TestBusPublishJoinErrors(t *testing.T) {
	bus := NewCommentEventBus()
	bus.Subscribe(CommentEventIntegrated, func(ctx context.Context, event CommentEvent) error {
		return errors.New("err-a")
	})
	bus.Subscribe(CommentEventIntegrated, func(ctx context.Context, event CommentEvent) error {
		return errors.New("err-b")
	})

	if err := bus.Publish(context.Background(), CommentEventIntegrated, CommentEvent{Type: CommentEventIntegrated}); err == nil {
		t.Fatalf("expected error")
	}
}
