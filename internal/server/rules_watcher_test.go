package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRulesWatcherRequiresFile(t *testing.T) {
	_, err := NewRulesWatcher("", time.Second, func() {}, nil)
	if err == nil {
		t.Fatal("expected an error for an empty rules file path")
	}
}

func TestRulesWatcherDetectsChange(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(rulesFile, []byte("skills:\n  - Go\n"), 0600); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	rw, err := NewRulesWatcher(rulesFile, 20*time.Millisecond, func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("NewRulesWatcher failed: %v", err)
	}

	if err := rw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		if err := rw.Stop(); err != nil {
			t.Errorf("Stop failed: %v", err)
		}
	}()

	if !rw.IsRunning() {
		t.Fatal("watcher not running after Start")
	}

	// fsnotify needs a moment to register the watch before the write
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(rulesFile, []byte("skills:\n  - Rust\n"), 0600); err != nil {
		t.Fatalf("failed to rewrite rules file: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("reload callback not invoked after file change")
	}
}

func TestRulesWatcherStartTwice(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(rulesFile, []byte("skills:\n  - Go\n"), 0600); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}

	rw, err := NewRulesWatcher(rulesFile, time.Second, func() {}, nil)
	if err != nil {
		t.Fatalf("NewRulesWatcher failed: %v", err)
	}

	if err := rw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() { _ = rw.Stop() }()

	if err := rw.Start(); err == nil {
		t.Fatal("expected second Start to fail")
	}
}

func TestRulesWatcherStopIdempotent(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(rulesFile, []byte("skills:\n  - Go\n"), 0600); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}

	rw, err := NewRulesWatcher(rulesFile, time.Second, func() {}, nil)
	if err != nil {
		t.Fatalf("NewRulesWatcher failed: %v", err)
	}
	if err := rw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := rw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if rw.IsRunning() {
		t.Error("watcher still running after Stop")
	}
	if err := rw.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}
