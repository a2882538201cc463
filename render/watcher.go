// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/learngl/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a shader directory and signals on C whenever a
// shader file is written, created or renamed. Signals are coalesced:
// C holds at most one pending signal. The watcher goroutine never
// touches GL state; the render loop does the reload.
type Watcher struct {

	// C receives a value when shaders changed.
	C <-chan struct{}

	fw   *fsnotify.Watcher
	done chan struct{}
}

// shaderExts are the file extensions that count as shaders.
var shaderExts = map[string]bool{".vert": true, ".frag": true, ".glsl": true}

// WatchShaders starts watching the given directory.
func WatchShaders(dir string) (*Watcher, error) {
	dir, err := fsx.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	c := make(chan struct{}, 1)
	w := &Watcher{C: c, fw: fw, done: make(chan struct{})}
	go w.watch(c)
	slog.Info("render: watching shaders", "dir", dir)
	return w, nil
}

func (w *Watcher) watch(c chan struct{}) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !shaderExts[filepath.Ext(ev.Name)] {
				continue
			}
			slog.Debug("render: shader changed", "file", ev.Name, "op", ev.Op.String())
			select {
			case c <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("render: shader watcher", "err", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
