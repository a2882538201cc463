// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package systemtest provides an in-memory [system.Platform]
// and [system.Window] for tests that need no display.
package systemtest

import (
	"image"

	"cogentcore.org/learngl/events"
	"cogentcore.org/learngl/events/key"
	"cogentcore.org/learngl/system"
)

// Platform is a [system.Platform] that counts its lifecycle
// calls and makes [Window]s.
type Platform struct {

	// InitErr is returned by Init when set.
	InitErr error

	// WindowErr is returned by NewWindow when set.
	WindowErr error

	// Inits and Terminates count the calls to Init and Terminate.
	Inits, Terminates int

	// Windows are the windows created, in order.
	Windows []*Window

	// Options are the options each window was created with.
	Options []system.WindowOptions

	// Record, when set, is passed on to each new window.
	Record func(name string)

	// CloseAfter, when positive, is passed on to each new window.
	CloseAfter int
}

var _ system.Platform = (*Platform)(nil)

func (p *Platform) Name() string {
	return "systemtest"
}

func (p *Platform) Init() error {
	p.Inits++
	return p.InitErr
}

func (p *Platform) Terminate() {
	p.Terminates++
}

func (p *Platform) NewWindow(opts *system.WindowOptions) (system.Window, error) {
	p.Options = append(p.Options, *opts)
	if p.WindowErr != nil {
		return nil, p.WindowErr
	}
	w := NewWindow(opts.Size)
	w.Record = p.Record
	w.CloseAfter = p.CloseAfter
	p.Windows = append(p.Windows, w)
	return w, nil
}

// Window is a [system.Window] whose input is scripted by the test.
// Key states change immediately, as with a real window after the
// OS has reported them; events queued with [Window.Queue] are
// delivered on the next PollEvents.
type Window struct {
	system.WindowBase

	// Size is the framebuffer size.
	Size image.Point

	// Keys are the current key states; missing keys are released.
	Keys map[key.Codes]key.Actions

	// Current is whether MakeContextCurrent was called.
	Current bool

	// Polls and Swaps count the calls to PollEvents and SwapBuffers.
	Polls, Swaps int

	// Destroyed is whether Destroy was called.
	Destroyed bool

	// Record, when set, is called with the name of each window call
	// that affects a frame: Key, PollEvents and SwapBuffers.
	Record func(name string)

	// CloseAfter, when positive, requests a close during the
	// PollEvents call with that number.
	CloseAfter int

	closeFlag bool
	pending   []*events.Event
}

var _ system.Window = (*Window)(nil)

// NewWindow returns a new window with the given framebuffer size.
func NewWindow(size image.Point) *Window {
	return &Window{Size: size, Keys: map[key.Codes]key.Actions{}}
}

func (w *Window) record(name string) {
	if w.Record != nil {
		w.Record(name)
	}
}

// Press sets the key as pressed and queues its event.
func (w *Window) Press(code key.Codes) {
	w.Keys[code] = key.Press
	w.Queue(events.NewKey(code, key.Press))
}

// Release sets the key as released and queues its event.
func (w *Window) Release(code key.Codes) {
	delete(w.Keys, code)
	w.Queue(events.NewKey(code, key.Release))
}

// Resize queues a resize of the framebuffer to the given size.
func (w *Window) Resize(size image.Point) {
	w.Queue(events.NewResize(size))
}

// RequestClose queues a close request, as from the title bar.
func (w *Window) RequestClose() {
	w.Queue(&events.Event{Type: events.WindowClose})
}

// Queue queues an event for delivery on the next PollEvents.
func (w *Window) Queue(ev *events.Event) {
	w.pending = append(w.pending, ev)
}

func (w *Window) MakeContextCurrent() {
	w.Current = true
}

func (w *Window) ShouldClose() bool {
	return w.closeFlag
}

func (w *Window) SetShouldClose(close bool) {
	w.closeFlag = close
}

func (w *Window) Key(code key.Codes) key.Actions {
	w.record("Key")
	return w.Keys[code]
}

// PollEvents delivers the queued events in order. Like a real
// window, close requests set the close flag before listeners run.
func (w *Window) PollEvents() {
	w.record("PollEvents")
	w.Polls++
	if w.CloseAfter > 0 && w.Polls == w.CloseAfter {
		w.RequestClose()
	}
	pending := w.pending
	w.pending = nil
	for _, ev := range pending {
		switch ev.Type {
		case events.WindowResize:
			w.Size = ev.Size
		case events.WindowClose:
			w.closeFlag = true
		}
		w.Send(ev)
	}
}

func (w *Window) SwapBuffers() {
	w.record("SwapBuffers")
	w.Swaps++
}

func (w *Window) FramebufferSize() image.Point {
	return w.Size
}

func (w *Window) Destroy() {
	w.Destroyed = true
}
