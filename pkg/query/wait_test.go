package query

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitConfig() *Config {
	cfg := NewConfig()
	cfg.Timeout = 60 * time.Millisecond
	cfg.Interval = 5 * time.Millisecond
	return cfg
}

func TestWaitForImmediateSuccess(t *testing.T) {
	calls := 0
	err := WaitFor(context.Background(), waitConfig(), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("a satisfiable condition resolves on the first poll, got %d calls", calls)
	}
}

func TestWaitForEventualSuccess(t *testing.T) {
	calls := 0
	err := WaitFor(context.Background(), waitConfig(), func() error {
		calls++
		if calls < 3 {
			return &NotFoundError{Message: "not yet"}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected success on the third poll, got %d calls", calls)
	}
}

func TestWaitForTimeoutWrapsSyncError(t *testing.T) {
	syncErr := &NotFoundError{Message: "Unable to find an element with the text: \"Email\""}

	err := WaitFor(context.Background(), waitConfig(), func() error {
		return syncErr
	})

	var timeout *TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("timeout must wrap the synchronous error, got %v", err)
	}
	if notFound.Message != syncErr.Message {
		t.Fatalf("rejection payload must match the sync error: %q", notFound.Message)
	}
}

func TestWaitForConfigErrorsFailFast(t *testing.T) {
	calls := 0
	cfgErr := &ConfigError{Message: "bad options"}

	err := WaitFor(context.Background(), waitConfig(), func() error {
		calls++
		return cfgErr
	})
	if !errors.Is(err, cfgErr) {
		t.Fatalf("configuration errors are never retried, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestWaitForContextCancelledBetweenPolls(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitFor(ctx, waitConfig(), func() error {
		return &NotFoundError{Message: "not yet"}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation between polls, got %v", err)
	}
}
