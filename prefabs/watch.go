package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeSpec
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpec:
		return "spec"
	case ChangeScript:
		return "script"
	default:
		return "none"
	}
}

// Change is one edited file the game cares about.
type Change struct {
	Path string
	Kind ChangeKind
}

// Name is the file name relative to its watched directory.
func (c Change) Name() string {
	return filepath.Base(c.Path)
}

func classify(path string) ChangeKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec
	case ".tengo":
		return ChangeScript
	}
	return ChangeNone
}

// Watcher reports edits to spec and script files on disk. Changes are
// buffered; the game loop collects them with Drain.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	done    chan struct{}
	stop    sync.Once
	wg      sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

// Err returns the last watcher error, if one is waiting.
func (w *Watcher) Err() error {
	if w == nil {
		return nil
	}
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

// Drain returns the changes reported since the last call without blocking.
// A file edited several times shows up once.
func (w *Watcher) Drain() []Change {
	if w == nil {
		return nil
	}
	var out []Change
	seen := make(map[string]bool)
	for {
		select {
		case c := <-w.changes:
			if seen[c.Path] {
				continue
			}
			seen[c.Path] = true
			out = append(out, c)
		default:
			return out
		}
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	lastSeen := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			kind := classify(ev.Name)
			if kind == ChangeNone {
				continue
			}
			now := time.Now()
			if prev, ok := lastSeen[ev.Name]; ok && now.Sub(prev) < watchDebounce {
				continue
			}
			lastSeen[ev.Name] = now
			select {
			case w.changes <- Change{Path: ev.Name, Kind: kind}:
			case <-w.done:
				return
			}
		}
	}
}
