package pipeline

import (
	"context"
	"testing"
	"time"
)

func TestGate_OpenByDefault(t *testing.T) {
	g := NewGate()
	if g.Paused() {
		t.Fatal("new gate should be open")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Fatalf("Wait on an open gate must return immediately: %v", err)
	}
}

func TestGate_PauseBlocksWait(t *testing.T) {
	g := NewGate()
	g.Pause()
	if !g.Paused() {
		t.Fatal("gate should report paused")
	}

	released := make(chan error, 1)
	go func() {
		released <- g.Wait(context.Background())
	}()

	select {
	case err := <-released:
		t.Fatalf("Wait returned while paused: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	g.Resume()

	select {
	case err := <-released:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Resume did not release the waiter")
	}
}

func TestGate_WaitHonorsContext(t *testing.T) {
	g := NewGate()
	g.Pause()

	ctx, cancel := context.WithCancel(context.Background())
	released := make(chan error, 1)
	go func() {
		released <- g.Wait(ctx)
	}()

	cancel()

	select {
	case err := <-released:
		if err == nil {
			t.Fatal("expected context error")
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not observe cancellation")
	}
}

func TestGate_IdempotentPauseResume(t *testing.T) {
	g := NewGate()
	g.Pause()
	g.Pause()
	if !g.Paused() {
		t.Fatal("double pause should still be paused")
	}
	g.Resume()
	g.Resume()
	if g.Paused() {
		t.Fatal("double resume should still be open")
	}

	// A full cycle afterwards still works.
	g.Pause()
	if !g.Paused() {
		t.Fatal("pause after cycle failed")
	}
	g.Resume()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Fatalf("gate unusable after cycle: %v", err)
	}
}
