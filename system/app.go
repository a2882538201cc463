// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the interface to the operating system
// windowing layer: process-wide initialization, and windows
// with an OpenGL context that deliver events.
package system

import (
	"fmt"
	"log/slog"
	"sync"
)

// Platform is the windowing subsystem of the operating system.
// Its state is process-wide: Init must be called once before any
// window is created, and Terminate once at exit. Platforms must
// only be used from the main OS thread.
type Platform interface {

	// Name returns the name of the platform driver, for logging.
	Name() string

	// Init initializes the windowing subsystem.
	Init() error

	// Terminate destroys any remaining windows and releases the
	// windowing subsystem.
	Terminate()

	// NewWindow creates a new window and its graphics context.
	NewWindow(opts *WindowOptions) (Window, error)
}

// Session is an initialized [Platform]. Terminate releases
// the platform exactly once, no matter how many times it is called,
// so it can be both deferred and called on early failure paths.
type Session struct {
	Platform Platform

	once sync.Once
}

// Init initializes the given platform and returns the session that
// must be terminated at exit. Nothing needs to be released on error.
func Init(p Platform) (*Session, error) {
	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("system: failed to initialize %s: %w", p.Name(), err)
	}
	slog.Debug("system: initialized", "platform", p.Name())
	return &Session{Platform: p}, nil
}

// NewWindow creates a new window on the session's platform.
func (s *Session) NewWindow(opts *WindowOptions) (Window, error) {
	w, err := s.Platform.NewWindow(opts)
	if err != nil {
		return nil, fmt.Errorf("system: failed to create window %q: %w", opts.Title, err)
	}
	return w, nil
}

// Terminate releases the platform. Only the first call has any effect.
func (s *Session) Terminate() {
	s.once.Do(func() {
		s.Platform.Terminate()
		slog.Debug("system: terminated", "platform", s.Platform.Name())
	})
}
