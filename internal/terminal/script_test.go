package terminal

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Script_DeliversInOrderThenExhausts(t *testing.T) {
	// given
	var out bytes.Buffer
	script := NewScript(&out, []Event{KeyEvent(KeyDown), CharEvent('a')}, []string{"first"})

	// when
	ev1, err1 := script.ReadMenuKey()
	line, errLine := script.ReadLine()
	ev2, err2 := script.ReadMenuKey()

	// then
	require.NoError(t, err1)
	require.NoError(t, errLine)
	require.NoError(t, err2)
	assert.Equal(t, KeyEvent(KeyDown), ev1)
	assert.Equal(t, "first", line)
	assert.Equal(t, CharEvent('a'), ev2)
	assert.True(t, script.Completed())

	_, err := script.ReadMenuKey()
	assert.ErrorIs(t, err, ErrInputExhausted)
	_, err = script.ReadLine()
	assert.ErrorIs(t, err, ErrInputExhausted)
	assert.True(t, script.Exhausted())
	assert.False(t, script.Completed())
}

func Test_Script_HooksSeeIndexes(t *testing.T) {
	// given
	var out bytes.Buffer
	script := NewScript(&out, []Event{KeyEvent(KeyEnter), KeyEvent(KeyUp)}, []string{"x", "y"})
	script.BeforeEvent = func(index int, ev Event) { fmt.Fprintf(&out, "event %d %s\n", index, ev.Key) }
	script.BeforeLine = func(index int, line string) { fmt.Fprintf(&out, "line %d %s\n", index, line) }

	// when
	_, _ = script.ReadMenuKey()
	_, _ = script.ReadLine()
	_, _ = script.ReadMenuKey()
	_, _ = script.ReadLine()

	// then
	assert.Equal(t, "event 0 enter\nline 0 x\nevent 1 up\nline 1 y\n", out.String())
	assert.Equal(t, 2, script.EventsUsed())
	assert.Equal(t, 2, script.LinesUsed())
}

func Test_Script_Rows(t *testing.T) {
	script := NewScript(&bytes.Buffer{}, nil, nil)
	assert.Equal(t, 24, script.Rows())
	assert.Equal(t, 10, script.WithRows(10).Rows())
}

func Test_rowsFromEnv(t *testing.T) {
	testCases := []struct {
		lines    string
		expected int
	}{
		{lines: "40", expected: 40},
		{lines: " 30 ", expected: 30},
		{lines: "", expected: 24},
		{lines: "0", expected: 24},
		{lines: "-5", expected: 24},
		{lines: "tall", expected: 24},
	}
	for _, tc := range testCases {
		t.Run(tc.lines, func(t *testing.T) {
			assert.Equal(t, tc.expected, rowsFromEnv(tc.lines, 24))
		})
	}
}
