// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package desktop

import (
	"image"

	"cogentcore.org/learngl/events"
	"cogentcore.org/learngl/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// FramebufferSizeEvent is the GLFW framebuffer size callback.
func (w *Window) FramebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.Send(events.NewResize(image.Pt(width, height)))
}

// physical key
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	w.Send(events.NewKey(GlfwKeyCode(ky), GlfwAction(action)))
}

// CloseEvent is the GLFW close callback, called after the close
// flag is set. Listeners can cancel with SetShouldClose(false).
func (w *Window) CloseEvent(gw *glfw.Window) {
	w.Send(&events.Event{Type: events.WindowClose})
}

// GlfwAction converts a GLFW key action.
func GlfwAction(action glfw.Action) key.Actions {
	switch action {
	case glfw.Press:
		return key.Press
	case glfw.Repeat:
		return key.Repeat
	}
	return key.Release
}

var glfwKeys = map[key.Codes]glfw.Key{
	key.CodeA:           glfw.KeyA,
	key.CodeB:           glfw.KeyB,
	key.CodeC:           glfw.KeyC,
	key.CodeD:           glfw.KeyD,
	key.CodeE:           glfw.KeyE,
	key.CodeF:           glfw.KeyF,
	key.CodeG:           glfw.KeyG,
	key.CodeH:           glfw.KeyH,
	key.CodeI:           glfw.KeyI,
	key.CodeJ:           glfw.KeyJ,
	key.CodeK:           glfw.KeyK,
	key.CodeL:           glfw.KeyL,
	key.CodeM:           glfw.KeyM,
	key.CodeN:           glfw.KeyN,
	key.CodeO:           glfw.KeyO,
	key.CodeP:           glfw.KeyP,
	key.CodeQ:           glfw.KeyQ,
	key.CodeR:           glfw.KeyR,
	key.CodeS:           glfw.KeyS,
	key.CodeT:           glfw.KeyT,
	key.CodeU:           glfw.KeyU,
	key.CodeV:           glfw.KeyV,
	key.CodeW:           glfw.KeyW,
	key.CodeX:           glfw.KeyX,
	key.CodeY:           glfw.KeyY,
	key.CodeZ:           glfw.KeyZ,
	key.Code0:           glfw.Key0,
	key.Code1:           glfw.Key1,
	key.Code2:           glfw.Key2,
	key.Code3:           glfw.Key3,
	key.Code4:           glfw.Key4,
	key.Code5:           glfw.Key5,
	key.Code6:           glfw.Key6,
	key.Code7:           glfw.Key7,
	key.Code8:           glfw.Key8,
	key.Code9:           glfw.Key9,
	key.CodeEscape:      glfw.KeyEscape,
	key.CodeReturnEnter: glfw.KeyEnter,
	key.CodeTab:         glfw.KeyTab,
	key.CodeSpacebar:    glfw.KeySpace,
	key.CodeBackspace:   glfw.KeyBackspace,
	key.CodeLeftArrow:   glfw.KeyLeft,
	key.CodeRightArrow:  glfw.KeyRight,
	key.CodeUpArrow:     glfw.KeyUp,
	key.CodeDownArrow:   glfw.KeyDown,
}

var glfwCodes = func() map[glfw.Key]key.Codes {
	m := make(map[glfw.Key]key.Codes, len(glfwKeys))
	for c, k := range glfwKeys {
		m[k] = c
	}
	return m
}()

// GlfwKeyCode converts a GLFW key into a key code.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	if c, ok := glfwCodes[kcode]; ok {
		return c
	}
	return key.CodeUnknown
}
