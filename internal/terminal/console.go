package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const maxKeySequence = 8

var _ Terminal = (*Console)(nil)

// Console is the interactive Terminal backed by the process's standard streams.
// Keys are read in raw mode one press at a time, lines in cooked mode with job-control signals off.
type Console struct {
	in          *os.File
	out         *os.File
	reader      *bufio.Reader
	defaultRows int
}

// NewConsole returns a Console on in and out. defaultRows is used when the height cannot be detected.
func NewConsole(in, out *os.File, defaultRows int) *Console {
	return &Console{
		in:          in,
		out:         out,
		reader:      bufio.NewReader(in),
		defaultRows: defaultRows,
	}
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// ReadMenuKey switches the input to raw mode for a single keypress.
// Input that is not a terminal is read byte by byte without mode changes.
func (c *Console) ReadMenuKey() (Event, error) {
	fd := int(c.in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err == nil {
			defer func() { _ = term.Restore(fd, state) }()
		}
	}
	first, err := c.reader.ReadByte()
	if err != nil {
		return KeyEvent(KeyNone), err
	}
	buf := []byte{first}
	if first == esc || first >= 0x80 {
		// The rest of an escape or UTF-8 sequence arrives in the same read, so only buffered bytes belong to it.
		for len(buf) < maxKeySequence && c.reader.Buffered() > 0 {
			b, err := c.reader.ReadByte()
			if err != nil {
				break
			}
			buf = append(buf, b)
		}
	}
	return DecodeKey(buf), nil
}

// ReadLine reads a line with ISIG cleared, so Ctrl+Z and Ctrl+C arrive as bytes instead of signals.
func (c *Console) ReadLine() (string, error) {
	var line string
	err := withoutSignals(int(c.in.Fd()), func() error {
		var readErr error
		line, readErr = c.reader.ReadString('\n')
		if readErr == io.EOF && line != "" {
			return nil
		}
		return readErr
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Clear() {
	_, _ = fmt.Fprint(c.out, "\033[2J\033[H")
}

func (c *Console) WaitForEnter() {
	_, _ = fmt.Fprint(c.out, "\nPress Enter to return to the menu...")
	_, _ = c.reader.ReadString('\n')
}

// Rows asks the terminal, then $LINES, then falls back to the configured default.
func (c *Console) Rows() int {
	if _, rows, err := term.GetSize(int(c.out.Fd())); err == nil && rows > 0 {
		return rows
	}
	return rowsFromEnv(os.Getenv("LINES"), c.defaultRows)
}

func rowsFromEnv(lines string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(lines)); err == nil && n > 0 {
		return n
	}
	return fallback
}
