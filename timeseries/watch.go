package timeseries

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the passenger CSV at path whenever it changes and hands each
// successfully parsed series to onChange. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file, so replacing the file
// by renaming another one over it is seen like an in-place write. A reload
// that fails (file briefly missing, duplicate period, ...) is logged and
// onChange is skipped; the caller keeps its previous series.
func Watch(ctx context.Context, path string, opts *CSVOptions, onChange func(*Series)) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	log := opts.logger()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(target); err != nil {
		return NewError(ErrSourceNotFound, fmt.Sprintf("file %s does not exist", path))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Info("timeseries: watching source", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(event, target) {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				// The replacement, if any, arrives as a Create.
				log.Debug("timeseries: source moved away", "path", target, "op", event.Op.String())
				continue
			}

			series, err := LoadCSV(path, opts)
			if err != nil {
				log.Error("timeseries: reload failed, keeping previous series", "path", target, "err", err)
				continue
			}
			log.Info("timeseries: reloaded", "path", target, "records", series.Len())
			onChange(series)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("timeseries: watcher error", "err", err)
		}
	}
}

// isSourceEvent reports whether event concerns the watched file and changes
// its content or existence. Chmod-only events are ignored.
func isSourceEvent(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Op&^fsnotify.Chmod != 0
}
