package reforge

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/capitan"
)

// DirTrigger marks the flag on any filesystem event under a directory
// tree: creates, writes, removes, and renames, recursively. Directories
// created while watching are added to the watch on the fly.
type DirTrigger struct {
	path string
}

// NewDirTrigger creates a DirTrigger for the given directory.
func NewDirTrigger(path string) *DirTrigger {
	return &DirTrigger{path: path}
}

// Start installs a recursive fsnotify watch over the directory. Setup
// failure is returned to the caller; delivery errors after setup are
// reported via WatchError and otherwise ignored.
func (t *DirTrigger) Start(ctx context.Context, flag *Flag) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watchTree(watcher, t.path); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", t.path, err)
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// A freshly created directory joins the watch so events
				// beneath it are not missed.
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watchTree(watcher, event.Name); err != nil {
							capitan.Emit(ctx, WatchError,
								KeyError.Field(err.Error()),
							)
						}
					}
				}

				flag.Mark()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				capitan.Emit(ctx, WatchError,
					KeyError.Field(err.Error()),
				)
			}
		}
	}()

	return nil
}

// watchTree registers root and every directory below it with the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
