// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of window event, and also the
// level at which one can select which events to listen to.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is when a key is pressed down or auto-repeats.
	// See [Event.Code] and [Event.Action].
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// WindowResize happens when the framebuffer of the window
	// changes size. [Event.Size] is the new size in pixels.
	WindowResize

	// WindowClose happens when the user requests that the window
	// be closed, for example with the title bar close button.
	WindowClose

	TypesN
)

var typesNames = [...]string{"UnknownType", "KeyDown", "KeyUp", "WindowResize", "WindowClose"}

// String returns the name of the event type.
func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return "Types(invalid)"
	}
	return typesNames[t]
}
