package terminal

import (
	"io"
)

const defaultScriptRows = 24

var _ Terminal = (*Script)(nil)

// Script is a Terminal that replays a fixed sequence of keypresses and lines.
// Output goes to the writer it was created with.
type Script struct {
	out    io.Writer
	events []Event
	lines  []string
	rows   int

	eventsUsed int
	linesUsed  int
	exhausted  bool

	// BeforeEvent and BeforeLine, when set, run just before the event or line at the given index is delivered.
	BeforeEvent func(index int, ev Event)
	BeforeLine  func(index int, line string)
}

// NewScript returns a Script that delivers events to ReadMenuKey and lines to ReadLine in order.
func NewScript(out io.Writer, events []Event, lines []string) *Script {
	return &Script{
		out:    out,
		events: events,
		lines:  lines,
		rows:   defaultScriptRows,
	}
}

// WithRows sets the height reported by Rows.
func (s *Script) WithRows(rows int) *Script {
	s.rows = rows
	return s
}

func (s *Script) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Script) ReadMenuKey() (Event, error) {
	if s.eventsUsed >= len(s.events) {
		s.exhausted = true
		return KeyEvent(KeyNone), ErrInputExhausted
	}
	ev := s.events[s.eventsUsed]
	if s.BeforeEvent != nil {
		s.BeforeEvent(s.eventsUsed, ev)
	}
	s.eventsUsed++
	return ev, nil
}

func (s *Script) ReadLine() (string, error) {
	if s.linesUsed >= len(s.lines) {
		s.exhausted = true
		return "", ErrInputExhausted
	}
	line := s.lines[s.linesUsed]
	if s.BeforeLine != nil {
		s.BeforeLine(s.linesUsed, line)
	}
	s.linesUsed++
	return line, nil
}

func (s *Script) Clear() {}

func (s *Script) WaitForEnter() {}

func (s *Script) Rows() int {
	return s.rows
}

// EventsUsed returns how many events have been delivered.
func (s *Script) EventsUsed() int {
	return s.eventsUsed
}

// LinesUsed returns how many lines have been delivered.
func (s *Script) LinesUsed() int {
	return s.linesUsed
}

// Exhausted reports whether a read was attempted after the script ran out.
func (s *Script) Exhausted() bool {
	return s.exhausted
}

// Completed reports whether every event and line was consumed without running past the end.
func (s *Script) Completed() bool {
	return !s.exhausted && s.eventsUsed == len(s.events) && s.linesUsed == len(s.lines)
}
