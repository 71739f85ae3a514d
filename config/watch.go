package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"keyhook/log"
)

const reloadDebounce = 150 * time.Millisecond

// shouldReload reports whether an fsnotify event touches the profile file.
// Editors that save through a temp file and rename show up under the base
// name only.
func shouldReload(path, base string, ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(ev.Name)
	return name == path || filepath.Base(name) == base
}

// Watch calls reload after the profile at path changes, until ctx is done.
// Bursts of events are coalesced. The directory is watched rather than the
// file so replace-by-rename saves are seen.
func Watch(ctx context.Context, path string, reload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	base := filepath.Base(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if shouldReload(path, base, ev) {
				debounce = time.After(reloadDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("config watcher: %v", err)
		case <-debounce:
			debounce = nil
			reload()
		}
	}
}
