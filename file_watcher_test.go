package stick

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan []byte) string {
	t.Helper()
	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return string(v)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for file contents")
		return ""
	}
}

func TestFileWatcher_EmitsInitialAndChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.json")
	if err := os.WriteFile(path, []byte(`{"v":1}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w := NewFileWatcher(path)
	if w.Path() != path {
		t.Errorf("expected path %q, got %q", path, w.Path())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if got := receive(t, out); got != `{"v":1}` {
		t.Errorf("expected initial contents, got %s", got)
	}

	if err := os.WriteFile(path, []byte(`{"v":2}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// A write may be reported as several events; wait for the new contents.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v := <-out:
			if string(v) == `{"v":2}` {
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for updated contents")
		}
	}
}

func TestFileWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	receive(t, out)

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case v := <-out:
		t.Errorf("expected sibling write to be ignored, got %s", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFileWatcher_MissingFile(t *testing.T) {
	_, err := NewFileWatcher(filepath.Join(t.TempDir(), "absent.yaml")).Watch(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out, err := NewFileWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	receive(t, out)
	cancel()

	select {
	case _, ok := <-out:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for close")
	}
}
