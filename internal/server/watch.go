package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// newWatcher watches the project file's directory. Editors often save by
// renaming a temp file over the original, which drops a watch on the file
// itself.
func (s *Server) newWatcher() (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(s.projectFile)); err != nil {
		w.Close()
		return nil, err
	}
	s.log.Info().Str("path", s.projectFile).Msg("watching project file for changes")
	return w, nil
}

// watchLoop reloads the project on every write or create of the project file
// until ctx is cancelled. It closes w on return.
func (s *Server) watchLoop(ctx context.Context, w *fsnotify.Watcher) {
	defer w.Close()

	target := filepath.Clean(s.projectFile)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Reload logs and counts its own failures.
			_ = s.Reload()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.Error().Err(err).Msg("project watcher error")
		}
	}
}
