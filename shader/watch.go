package shader

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds a Program when one of its source files changes.
// File events arrive on a background goroutine; the rebuild itself happens in
// Poll, which must be called on the thread that owns the GL context.
type Watcher struct {
	program *Program
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan struct{}
	done    chan struct{}
}

// Watch starts watching the files p was loaded from.
func Watch(p *Program) (*Watcher, error) {
	vs, fs := p.Paths()
	if vs == "" || fs == "" {
		return nil, fmt.Errorf("program was not loaded from files")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		program: p,
		watcher: fw,
		files:   make(map[string]bool),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	// Editors often replace files instead of writing them, so watch the
	// directories and filter by name.
	dirs := make(map[string]bool)
	for _, path := range []string{vs, fs} {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("shader watcher: %v", err)
		}
	}
}

// Changed is signalled when a watched file changes and stays pending until Poll.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Poll rebuilds the program if a change is pending. It reports whether a
// rebuild was attempted.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
	default:
		return false
	}
	vs, fs := w.program.Paths()
	if err := w.program.Reload(); err != nil {
		log.Printf("Keeping previous shader program: %v", err)
		return true
	}
	log.Printf("Reloaded shader program %s + %s", filepath.Base(vs), filepath.Base(fs))
	return true
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
