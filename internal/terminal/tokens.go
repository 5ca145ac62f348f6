package terminal

import "strings"

// Typed lines that stand in for control keys on line-mode terminals.
const (
	CancelHint = "Ctrl+X"
	BackHint   = "Ctrl+Z"
)

// IsCancelToken reports whether a typed line asks to cancel: a lone 0x18 byte or ^X, ignoring surrounding whitespace.
func IsCancelToken(text string) bool {
	return matchesControl(text, ctrlX, 'x')
}

// IsBackToken reports whether a typed line asks to go back: a lone 0x1A byte or ^Z, ignoring surrounding whitespace.
func IsBackToken(text string) bool {
	return matchesControl(text, ctrlZ, 'z')
}

func matchesControl(text string, control byte, letter byte) bool {
	t := strings.TrimSpace(text)
	switch len(t) {
	case 1:
		return t[0] == control
	case 2:
		return t[0] == '^' && (t[1] == letter || t[1] == letter-'a'+'A')
	}
	return false
}

// Printable replaces C0 control characters and DEL with spaces, for echoing catalog text to the screen.
func Printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return ' '
		}
		return r
	}, s)
}
