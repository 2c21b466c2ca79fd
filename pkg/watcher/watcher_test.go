package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Close()

	changed := make(chan string, 4)
	w.Start(context.Background(), func(p string) { changed <- p })

	if err := os.WriteFile(path, []byte("name: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != w.Path() {
			t.Errorf("expected %s, got %s", w.Path(), got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Close()

	changed := make(chan string, 4)
	w.Start(context.Background(), func(p string) { changed <- p })

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		t.Errorf("expected no callback, got %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx, func(string) {})
	cancel()

	select {
	case <-w.done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit")
	}
}

func TestWatcherSilentAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, 10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	var calls atomic.Int32
	w.Start(context.Background(), func(string) { calls.Add(1) })

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("name: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// a timer that expired just before Close must not deliver either
	w.fire(func(string) { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no callbacks after Close, got %d", n)
	}
}

func TestCloseWaitsForRunningCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, DefaultDebounce, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	started := make(chan struct{})
	var finished atomic.Bool
	go w.fire(func(string) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})
	<-started

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !finished.Load() {
		t.Error("expected Close to wait for the running callback")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope", "preset.yaml"), DefaultDebounce, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
