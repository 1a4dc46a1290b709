// Package key decodes raw terminal input into keystrokes. A keystroke
// is either a literal character or a symbolic code produced by an
// ANSI/VT100 escape sequence.
package key

import "fmt"

// Code identifies a key decoded from an escape sequence. The zero
// value marks a literal Key.
type Code int

const (
	None Code = iota
	Unknown
	Up
	Down
	Right
	Left
	Home
	End
	Insert
	Delete
	PageUp
	PageDown
	CtrlLeft
	CtrlRight
)

var codeNames = map[Code]string{
	None:      "None",
	Unknown:   "Unknown",
	Up:        "Up",
	Down:      "Down",
	Right:     "Right",
	Left:      "Left",
	Home:      "Home",
	End:       "End",
	Insert:    "Insert",
	Delete:    "Delete",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	CtrlLeft:  "CtrlLeft",
	CtrlRight: "CtrlRight",
}

// String returns the code name for display.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Key is a single decoded keystroke. Rune holds a literal character
// when Code is None; otherwise Code identifies a symbolic key and Rune
// is zero.
type Key struct {
	Rune rune
	Code Code
}

// Literal reports whether k holds a literal character.
func (k Key) Literal() bool {
	return k.Code == None
}

// String returns the keystroke for display.
func (k Key) String() string {
	if k.Literal() {
		return fmt.Sprintf("%q", k.Rune)
	}
	return k.Code.String()
}
