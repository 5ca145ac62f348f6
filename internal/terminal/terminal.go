package terminal

import (
	"errors"
	"io"
)

// ErrInputExhausted is returned by a Script when it has no more events or lines.
var ErrInputExhausted = errors.New("scripted input exhausted")

// Terminal is the input and output surface used by the form and the list controller.
// Everything written goes through the embedded io.Writer.
type Terminal interface {
	io.Writer

	// ReadMenuKey blocks for one keypress and classifies it.
	ReadMenuKey() (Event, error)

	// ReadLine reads one line of text without its terminator.
	// io.EOF or ErrInputExhausted means no more input will arrive.
	ReadLine() (string, error)

	// Clear wipes the visible screen.
	Clear()

	// WaitForEnter pauses until the user acknowledges a screen of output.
	WaitForEnter()

	// Rows reports the terminal height in lines.
	Rows() int
}
