// Package watch regenerates on source changes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// FileWatcher watches a directory tree and invokes onChange for files
// matching the configured patterns. Events are debounced so editor
// write-then-rename sequences trigger one regeneration.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	exclude  []string
	debounce time.Duration
	onChange func(paths []string)
	log      zerolog.Logger
}

// NewFileWatcher creates a watcher. onChange receives the batch of changed
// paths after the debounce window closes.
func NewFileWatcher(patterns, exclude []string, debounce time.Duration, onChange func(paths []string), log zerolog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FileWatcher{
		watcher:  watcher,
		patterns: patterns,
		exclude:  exclude,
		debounce: debounce,
		onChange: onChange,
		log:      log,
	}, nil
}

// AddDirectory recursively registers dir and its subdirectories.
func (fw *FileWatcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		for _, pattern := range fw.exclude {
			if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if info.IsDir() {
			if err := fw.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		}
		return nil
	})
}

// Start blocks, dispatching change batches until ctx is done.
func (fw *FileWatcher) Start(ctx context.Context) error {
	defer fw.watcher.Close()

	var (
		pending = make(map[string]struct{})
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fw.AddDirectory(event.Name); err != nil {
						fw.log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
					continue
				}
			}
			if !fw.matches(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = make(map[string]struct{})
			fire = nil
			fw.onChange(paths)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				fw.log.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// matches checks excludes first, then the watch patterns. A "**/" prefix
// matches by extension anywhere in the tree.
func (fw *FileWatcher) matches(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range fw.exclude {
		if matched, _ := filepath.Match(pattern, base); matched {
			return false
		}
	}
	for _, pattern := range fw.patterns {
		if after, ok := strings.CutPrefix(pattern, "**/"); ok {
			pattern = after
		}
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}
