package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestWatcher_RunsOnStartAndOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.yaml")
	if err := os.WriteFile(path, []byte("amount: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	w := New(path, func(context.Context) error {
		calls <- struct{}{}
		return nil
	}, WithDebounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitFor(t, calls, "initial run")

	if err := os.WriteFile(path, []byte("amount: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	waitFor(t, calls, "run after change")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_JobErrorDoesNotStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	os.WriteFile(path, []byte("{}"), 0o600)

	var n atomic.Int32
	calls := make(chan struct{}, 16)
	w := New(path, func(context.Context) error {
		n.Add(1)
		calls <- struct{}{}
		return errors.New("render failed")
	}, WithDebounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitFor(t, calls, "initial run")
	os.WriteFile(path, []byte(`{"amount": 1}`), 0o600)
	waitFor(t, calls, "run after change")

	if n.Load() < 2 {
		t.Errorf("job ran %d times, want at least 2", n.Load())
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "request.json")
	w := New(path, func(context.Context) error { return nil })
	if err := w.Run(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}
