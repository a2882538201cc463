// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the keyboard key codes and actions that
// window drivers translate their native key events into.
package key

import "fmt"

// Codes are the physical key codes.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEscape
	CodeReturnEnter
	CodeTab
	CodeSpacebar
	CodeBackspace
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow

	CodesN
)

var codeNames = map[Codes]string{
	CodeUnknown:     "Unknown",
	CodeEscape:      "Escape",
	CodeReturnEnter: "ReturnEnter",
	CodeTab:         "Tab",
	CodeSpacebar:    "Spacebar",
	CodeBackspace:   "Backspace",
	CodeLeftArrow:   "LeftArrow",
	CodeRightArrow:  "RightArrow",
	CodeUpArrow:     "UpArrow",
	CodeDownArrow:   "DownArrow",
}

func (c Codes) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + c - CodeA))
	case c >= Code0 && c <= Code9:
		return string(rune('0' + c - Code0))
	}
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}

// Actions are the states a key can be in or move to.
type Actions int32

const (
	// Release is a key that is up, or was just released.
	Release Actions = iota

	// Press is a key that is down, or was just pressed.
	Press

	// Repeat is a key held down long enough to auto-repeat.
	Repeat
)

func (a Actions) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	}
	return fmt.Sprintf("Actions(%d)", int32(a))
}
