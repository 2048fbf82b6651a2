package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	spec := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(spec, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	var got []Change
	for time.Now().Before(deadline) {
		got = append(got, w.Drain()...)
		if len(got) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if len(got) == 0 {
		t.Fatalf("no changes for %s", spec)
	}
	for _, c := range got {
		if c.Kind != ChangeSpec {
			t.Fatalf("change %s has kind %s, want spec", c.Path, c.Kind)
		}
		if c.Name() != "game.yaml" {
			t.Fatalf("change name = %q", c.Name())
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if got := w.Drain(); len(got) != 0 {
		t.Fatalf("drain after close = %v", got)
	}

	var nilWatcher *Watcher
	if nilWatcher.Drain() != nil || nilWatcher.Close() != nil || nilWatcher.Err() != nil {
		t.Fatalf("nil watcher should be inert")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want ChangeKind
	}{
		{"game.yaml", ChangeSpec},
		{"GAME.YML", ChangeSpec},
		{"scripts/layout.tengo", ChangeScript},
		{"scripts/layout.lua", ChangeNone},
		{"readme.md", ChangeNone},
	}
	for _, c := range cases {
		if got := classify(c.path); got != c.want {
			t.Fatalf("%s: got %s, want %s", c.path, got, c.want)
		}
	}
}
