// Package form runs guarded multi-stage input forms on a terminal.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abgdnv/inventory/internal/terminal"
)

// ErrCancelled is returned by Run when the user cancels the form.
var ErrCancelled = errors.New("form cancelled")

// Status is the outcome of a single stage prompt.
type Status int

const (
	StatusOK Status = iota
	StatusCancel
	StatusBack
)

// Stage prompts for one field.
type Stage struct {
	Label string
	// Value is the current value. It is shown as the default and kept when the user submits an empty line.
	Value string
	// Validate rejects a candidate value. The stage is repeated until it returns nil.
	Validate func(text string) error
}

// Form is a linear sequence of stages with cancel and back navigation.
type Form struct {
	term   terminal.Terminal
	styles terminal.Styles
	title  string
	stages []Stage
}

// New returns a Form with the given stages.
func New(term terminal.Terminal, styles terminal.Styles, title string, stages ...Stage) *Form {
	return &Form{
		term:   term,
		styles: styles,
		title:  title,
		stages: stages,
	}
}

// Run walks the stages and then calls commit exactly once with the accepted values, in stage order.
// It returns ErrCancelled when the user cancels, or the read error when input ends.
// Nothing is committed in either case.
func (f *Form) Run(commit func(values []string) error) error {
	fmt.Fprintln(f.term, f.styles.Title.Render(f.title))
	fmt.Fprintln(f.term, f.styles.Hint.Render(fmt.Sprintf("(%s to cancel, %s to go back)", terminal.CancelHint, terminal.BackHint)))

	for i := 0; i < len(f.stages); {
		status, value, err := f.prompt(&f.stages[i])
		if err != nil {
			return fmt.Errorf("stage %q: %w", f.stages[i].Label, err)
		}
		switch status {
		case StatusCancel:
			fmt.Fprintln(f.term, f.styles.Warning.Render("Cancelled."))
			return ErrCancelled
		case StatusBack:
			if i == 0 {
				fmt.Fprintln(f.term, f.styles.Warning.Render("Already at first input."))
				continue
			}
			i--
		case StatusOK:
			f.stages[i].Value = value
			i++
		}
	}

	values := make([]string, len(f.stages))
	for i, s := range f.stages {
		values[i] = s.Value
	}
	return commit(values)
}

// prompt asks for one stage until the input validates or the user navigates away.
func (f *Form) prompt(stage *Stage) (Status, string, error) {
	for {
		if stage.Value != "" {
			fmt.Fprintf(f.term, "%s [%s]: ", stage.Label, terminal.Printable(stage.Value))
		} else {
			fmt.Fprintf(f.term, "%s: ", stage.Label)
		}
		line, err := f.term.ReadLine()
		if err != nil {
			fmt.Fprintln(f.term)
			return StatusCancel, "", err
		}
		if terminal.IsCancelToken(line) {
			return StatusCancel, "", nil
		}
		if terminal.IsBackToken(line) {
			return StatusBack, "", nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			text = stage.Value
		}
		if stage.Validate != nil {
			if err := stage.Validate(text); err != nil {
				fmt.Fprintln(f.term, f.styles.Error.Render("Invalid "+strings.ToLower(stage.Label)+": "+err.Error()))
				continue
			}
		}
		return StatusOK, text, nil
	}
}
