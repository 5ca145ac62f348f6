// Package terminal reads classified keypresses and lines from the user.
//
// The Terminal interface is the only way the UI talks to the user, so a scripted implementation
// can replace the real console in tests and in the built-in end-to-end check.
package terminal

import (
	"unicode"
	"unicode/utf8"
)

// Key is the semantic class of a keypress.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyDigit
	KeyEscape
	KeyBackspace
	KeyChar
	KeyRunTests
	KeyRunE2E
	KeyExit
	KeyAddProduct
)

// Control bytes with a fixed meaning.
const (
	ctrlC = 0x03
	ctrlE = 0x05
	ctrlN = 0x0E
	ctrlQ = 0x11
	ctrlT = 0x14
	ctrlX = 0x18
	ctrlZ = 0x1A
	esc   = 0x1B
	del   = 0x7F
	bs    = 0x08
)

var keyNames = map[Key]string{
	KeyNone:       "none",
	KeyUp:         "up",
	KeyDown:       "down",
	KeyEnter:      "enter",
	KeyDigit:      "digit",
	KeyEscape:     "escape",
	KeyBackspace:  "backspace",
	KeyChar:       "char",
	KeyRunTests:   "run-tests",
	KeyRunE2E:     "run-e2e",
	KeyExit:       "exit",
	KeyAddProduct: "add-product",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one classified keypress. Digit is set for KeyDigit and Char for KeyChar.
type Event struct {
	Key   Key
	Digit int
	Char  rune
}

// KeyEvent returns an Event carrying only a key.
func KeyEvent(k Key) Event {
	return Event{Key: k, Digit: -1}
}

// DigitEvent returns a KeyDigit event.
func DigitEvent(d int) Event {
	return Event{Key: KeyDigit, Digit: d, Char: rune('0' + d)}
}

// CharEvent returns a KeyChar event.
func CharEvent(c rune) Event {
	return Event{Key: KeyChar, Digit: -1, Char: c}
}

// DecodeKey classifies the bytes delivered by a single raw read.
// Unrecognised input maps to KeyNone.
func DecodeKey(buf []byte) Event {
	if len(buf) == 0 {
		return KeyEvent(KeyNone)
	}
	switch c := buf[0]; {
	case c == '\n' || c == '\r':
		return KeyEvent(KeyEnter)
	case c == del || c == bs:
		return KeyEvent(KeyBackspace)
	case c == ctrlT:
		return KeyEvent(KeyRunTests)
	case c == ctrlE:
		return KeyEvent(KeyRunE2E)
	case c == ctrlQ || c == ctrlC:
		return KeyEvent(KeyExit)
	case c == ctrlN:
		return KeyEvent(KeyAddProduct)
	case c >= '0' && c <= '9':
		return DigitEvent(int(c - '0'))
	case c == esc:
		return decodeEscape(buf[1:])
	case c >= 0x20 && c < del:
		return CharEvent(rune(c))
	case c >= utf8.RuneSelf:
		r, _ := utf8.DecodeRune(buf)
		if r != utf8.RuneError && unicode.IsPrint(r) {
			return CharEvent(r)
		}
	}
	return KeyEvent(KeyNone)
}

func decodeEscape(rest []byte) Event {
	if len(rest) == 0 {
		return KeyEvent(KeyEscape)
	}
	if rest[0] != '[' && rest[0] != 'O' {
		return KeyEvent(KeyEscape)
	}
	if len(rest) < 2 {
		return KeyEvent(KeyNone)
	}
	switch rest[1] {
	case 'A':
		return KeyEvent(KeyUp)
	case 'B':
		return KeyEvent(KeyDown)
	}
	return KeyEvent(KeyNone)
}
