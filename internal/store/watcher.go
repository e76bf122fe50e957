package store

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 100 * time.Millisecond

// WatchSeed reloads the store from the YAML fixture at path whenever the file changes.
// Reloading discards boards created or deleted since the last load.
// onReload, if non-nil, is called after each reload attempt with its error.
func (s *Store) WatchSeed(path string, onReload func(error)) error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watching {
		return nil // Already watching
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: editors often replace files via rename
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	s.watching = true
	s.done = make(chan struct{})

	go s.watchLoop(watcher, abs, s.done, onReload)

	return nil
}

// Unwatch stops watching the seed file.
func (s *Store) Unwatch() error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if !s.watching {
		return nil
	}

	close(s.done)
	s.watching = false
	return nil
}

// watchLoop processes filesystem events with debouncing.
func (s *Store) watchLoop(watcher *fsnotify.Watcher, path string, done <-chan struct{}, onReload func(error)) {
	defer watcher.Close()

	var debounceTimer *time.Timer
	var timerMu sync.Mutex

	for {
		select {
		case <-done:
			timerMu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			timerMu.Unlock()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			timerMu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				select {
				case <-done:
					return
				default:
				}
				err := s.reloadSeed(path)
				if onReload != nil {
					onReload(err)
				}
			})
			timerMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("seed watcher error", zap.Error(err))
		}
	}
}

// reloadSeed loads the fixture file and resets the store. A broken file leaves the store untouched.
func (s *Store) reloadSeed(path string) error {
	seed, err := LoadSeed(path)
	if err != nil {
		s.log.Warn("seed reload failed", zap.String("path", path), zap.Error(err))
		return err
	}
	if err := s.Reset(seed); err != nil {
		s.log.Warn("seed reload failed", zap.String("path", path), zap.Error(err))
		return err
	}
	s.log.Info("seed reloaded",
		zap.String("path", path),
		zap.Int("users", len(seed.Users)),
		zap.Int("boards", len(seed.Boards)),
	)
	return nil
}
