// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events delivered by a
// system window and the listeners that subscribe to them.
package events

import (
	"fmt"
	"image"

	"cogentcore.org/learngl/events/key"
)

// Event is a single window event. Only the fields
// relevant to its [Types] are set.
type Event struct {

	// Type is the type of the event.
	Type Types

	// Size is the new framebuffer size for [WindowResize].
	Size image.Point

	// Code is the key for [KeyDown] and [KeyUp].
	Code key.Codes

	// Action is the key action for [KeyDown] and [KeyUp].
	Action key.Actions

	handled bool
}

// NewResize returns a new [WindowResize] event for the given size.
func NewResize(size image.Point) *Event {
	return &Event{Type: WindowResize, Size: size}
}

// NewKey returns a new key event for the given code and action.
// A [key.Release] makes a [KeyUp] event and anything else a [KeyDown].
func NewKey(code key.Codes, action key.Actions) *Event {
	typ := KeyDown
	if action == key.Release {
		typ = KeyUp
	}
	return &Event{Type: typ, Code: code, Action: action}
}

// SetHandled marks the event as handled, which stops
// any remaining listeners from being called.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

func (ev *Event) String() string {
	switch ev.Type {
	case WindowResize:
		return fmt.Sprintf("%v{Size: %v}", ev.Type, ev.Size)
	case KeyDown, KeyUp:
		return fmt.Sprintf("%v{Code: %v, Action: %v}", ev.Type, ev.Code, ev.Action)
	}
	return ev.Type.String()
}
