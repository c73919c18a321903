package assets

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/logger"
)

// Watcher reports edits to watched asset files in the manager's on-disk
// directories. Events arrive on a goroutine; consumers poll Changed from the
// render thread, since GL objects may only be rebuilt there.
type Watcher struct {
	fsw     *fsnotify.Watcher
	names   map[string]bool
	changed chan string
	done    chan struct{}
}

// Watch starts watching names (relative to each on-disk source) for writes.
// It returns an error if the manager has no on-disk directories.
func (m *Manager) Watch(names ...string) (*Watcher, error) {
	dirs := m.Dirs()
	if len(dirs) == 0 {
		return nil, fmt.Errorf("watch: no on-disk asset directories")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		names:   make(map[string]bool),
		changed: make(chan string, 16),
		done:    make(chan struct{}),
	}
	watched := make(map[string]bool)
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, filepath.FromSlash(name))
			w.names[filepath.Clean(path)] = true
			// Watch the parent directory so editors that replace files
			// through a rename are still seen.
			parent := filepath.Dir(path)
			if watched[parent] {
				continue
			}
			if err := fsw.Add(parent); err != nil {
				_ = fsw.Close()
				return nil, fmt.Errorf("watch %s: %w", parent, err)
			}
			watched[parent] = true
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.names[path] {
				continue
			}
			logger.Debug("asset changed", zap.String("path", path), zap.Stringer("op", event.Op))
			select {
			case w.changed <- path:
			default:
				// A reload is already pending.
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("asset watcher error", zap.Error(err))
		}
	}
}

// Changed returns a path if a watched file changed since the last call.
// It never blocks.
func (w *Watcher) Changed() (string, bool) {
	var (
		last  string
		found bool
	)
	for {
		select {
		case p := <-w.changed:
			last, found = p, true
		default:
			return last, found
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
