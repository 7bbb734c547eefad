package walker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch blocks until ctx is done, re-cleaning matching files whenever they
// are written or created in the directory. Files whose content is already
// clean are not rewritten, so the walker's own writes settle after one extra
// event. Each processed file is passed to onResult, which may be nil.
//
// Errors on individual files are logged and do not stop the watch.
func (w *Walker) Watch(ctx context.Context, onResult func(Result)) error {
	root, err := w.openRoot()
	if err != nil {
		return err
	}
	defer root.Close() //nolint:errcheck // Read-only handle.

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer func() {
		err := watcher.Close()
		if err != nil {
			w.logger.Error("close watcher", slog.Any("err", err))
		}
	}()

	err = watcher.Add(w.dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching for changes", slog.String("dir", w.dir))

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only content changes are interesting.
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}

			name := filepath.Base(evt.Name)
			if !w.matches(name) {
				continue
			}

			info, err := root.Stat(name)
			if err != nil || info.IsDir() {
				continue
			}

			res, err := w.cleanFile(root, name, false)
			if err != nil {
				w.logger.Error("clean file",
					slog.String("event", evt.String()),
					slog.Any("err", err),
				)

				continue
			}

			if onResult != nil {
				onResult(res)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("watch events dropped", slog.Any("err", err))

				continue
			}

			w.logger.Error("watch", slog.Any("err", err))
		}
	}
}
