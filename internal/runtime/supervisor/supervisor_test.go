package supervisor

import (
	"context"
	"errors"
	"testing"
	"time"

	logx "hwbot/pkg/logx"
)

func TestGoErrorCancelsContext(t *testing.T) {
	s := New(context.Background(), WithLogger(logx.Nop()), WithCancelOnError(true))

	boom := errors.New("boom")
	s.Go("failing", func(ctx context.Context) error { return boom })

	select {
	case <-s.Context().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled after goroutine error")
	}
	if err := s.Err(); !errors.Is(err, boom) {
		t.Fatalf("expected first error to be recorded, got %v", err)
	}
}

func TestGoPanicRecovered(t *testing.T) {
	s := New(context.Background(), WithLogger(logx.Nop()), WithCancelOnError(true))

	s.Go("panicking", func(ctx context.Context) error { panic("oops") })

	select {
	case <-s.Context().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled after panic")
	}
	if s.Err() == nil {
		t.Fatal("expected panic to be recorded as error")
	}
}

func TestStopWaitsForGoroutines(t *testing.T) {
	s := New(context.Background(), WithLogger(logx.Nop()))

	released := make(chan struct{})
	s.Go("worker", func(ctx context.Context) error {
		<-ctx.Done()
		close(released)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	select {
	case <-released:
	default:
		t.Fatal("Stop returned before the goroutine exited")
	}
	if s.Active() != 0 {
		t.Fatalf("expected no active goroutines, got %d", s.Active())
	}
}

func TestCleanExitIsNotAnError(t *testing.T) {
	s := New(context.Background(), WithCancelOnError(true))
	s.Go("clean", func(ctx context.Context) error { return nil })
	s.Go("cancelled", func(ctx context.Context) error { return context.Canceled })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.Stop(ctx)
	if err := s.Err(); err != nil {
		t.Fatalf("clean/cancelled exits must not record an error, got %v", err)
	}
}
