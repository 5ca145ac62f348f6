package selfcheck

import (
	"fmt"
	"io"
	"strings"

	"github.com/abgdnv/inventory/internal/menu"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/terminal"
)

// DisplayMode selects how the end-to-end scenarios report progress.
type DisplayMode int

const (
	ModeStep    DisplayMode = 1
	ModeSummary DisplayMode = 2
)

type scenario struct {
	name string
	run  func(term terminal.Terminal, mode DisplayMode) error
}

// EndToEndTests asks for a display mode, then replays the scripted scenarios through the real list controller.
func (r *Runner) EndToEndTests(term terminal.Terminal) {
	mode := r.promptMode(term)
	r.runEndToEnd(term, mode)
}

// promptMode reads 1 or 2. Empty input, the cancel token and end of input mean summary mode.
func (r *Runner) promptMode(term terminal.Terminal) DisplayMode {
	for {
		fmt.Fprint(term, "\nChoose E2E display mode:\n")
		fmt.Fprint(term, "  [1] Step-by-step (with live replay)\n")
		fmt.Fprint(term, "  [2] Summary results only\n")
		fmt.Fprint(term, "Select option (default 2): ")

		line, err := term.ReadLine()
		if err != nil {
			fmt.Fprintln(term, "\n"+r.styles.Warning.Render("No input detected, defaulting to summary mode."))
			return ModeSummary
		}
		if terminal.IsCancelToken(line) {
			fmt.Fprintln(term, "\n"+r.styles.Warning.Render("Cancelled selection, using summary mode."))
			return ModeSummary
		}
		switch strings.TrimSpace(line) {
		case "", "2":
			return ModeSummary
		case "1":
			return ModeStep
		}
		fmt.Fprintln(term, r.styles.Error.Render("Invalid choice. Please enter 1 or 2.")+"\n")
	}
}

func (r *Runner) runEndToEnd(term terminal.Terminal, mode DisplayMode) Summary {
	scenarios := []scenario{
		{name: "Complete user journey", run: r.userJourney},
	}

	if mode == ModeStep {
		fmt.Fprint(term, "\n"+r.styles.Title.Render("Starting step-by-step replay...")+"\n\n")
	} else {
		fmt.Fprint(term, "\nRunning end-to-end tests...\n\n")
	}

	summary := Summary{Total: len(scenarios)}
	results := make([]error, len(scenarios))
	for i, sc := range scenarios {
		if mode == ModeStep {
			fmt.Fprintf(term, "%s %s\n", r.styles.Info.Render("Scenario:"), sc.name)
		}
		err := sc.run(term, mode)
		results[i] = err
		if err == nil {
			summary.Passed++
		} else {
			r.logger.Warn("End-to-end scenario failed", "scenario", sc.name, "error", err)
		}

		switch {
		case mode == ModeStep && err == nil:
			fmt.Fprintln(term, r.styles.Success.Render("✓ Scenario completed successfully.")+"\n")
		case mode == ModeStep:
			fmt.Fprintf(term, "    %v\n", err)
			fmt.Fprintln(term, r.styles.Error.Render("✗ Scenario failed.")+"\n")
		case err == nil:
			r.pass(term, sc.name)
		default:
			r.fail(term, sc.name, err)
		}
	}

	fmt.Fprintln(term, "\n"+r.styles.Title.Render("Result breakdown:"))
	for i, sc := range scenarios {
		status := r.styles.Success.Render("PASS")
		if results[i] != nil {
			status = r.styles.Error.Render("FAIL")
		}
		fmt.Fprintf(term, "  %s %s\n", status, sc.name)
	}
	fmt.Fprintf(term, "\nE2E summary: %d/%d passed.\n", summary.Passed, summary.Total)
	r.logger.Info("End-to-end self-check finished", "passed", summary.Passed, "total", summary.Total)
	return summary
}

var journeyResult = service.ProductDto{ID: "E2E002", Name: "E2E Precision Mouse Pro", Quantity: 25, UnitPrice: 2490}

// userJourney drives the list controller with the scripted journey on an empty scratch catalog.
func (r *Runner) userJourney(term terminal.Terminal, mode DisplayMode) error {
	s, err := r.newScratch()
	if err != nil {
		return err
	}
	defer s.close()

	loaded, err := s.service.Load()
	if err != nil {
		return fmt.Errorf("load empty catalog: %w", err)
	}
	if loaded != 0 {
		return fmt.Errorf("expected empty catalog after load, got %d items", loaded)
	}

	var out io.Writer = io.Discard
	if mode == ModeStep {
		out = term
	}
	script := terminal.NewScript(out, journeyEvents, journeyLines).WithRows(term.Rows())
	if mode == ModeStep {
		script.BeforeEvent = func(index int, _ terminal.Event) { r.announce(term, journeyEventSteps[index]) }
		script.BeforeLine = func(index int, _ string) { r.announce(term, journeyLineSteps[index]) }
	}

	controller := menu.NewController(s.service, script, r.styles, r.logger, menu.Options{ReservedLines: r.reservedLines})
	if err := controller.Run(); err != nil {
		return fmt.Errorf("menu script did not complete cleanly (used %d/%d events): %w",
			script.EventsUsed(), len(journeyEvents), err)
	}
	if !script.Completed() {
		return fmt.Errorf("script did not complete cleanly (used %d/%d events, %d/%d lines)",
			script.EventsUsed(), len(journeyEvents), script.LinesUsed(), len(journeyLines))
	}
	if err := expectOnly(s.service.FindAll(), "final product state"); err != nil {
		return err
	}

	reloaded, err := s.reload(r.logger)
	if err != nil {
		return fmt.Errorf("reload persisted catalog: %w", err)
	}
	if err := expectOnly(reloaded.FindAll(), "persisted data"); err != nil {
		return err
	}
	if matches := reloaded.Search("pro"); len(matches) != 1 {
		return fmt.Errorf("expected keyword search on persisted data to return 1 item, got %d", len(matches))
	}
	return nil
}

func expectOnly(products []service.ProductDto, what string) error {
	if len(products) != 1 {
		return fmt.Errorf("%s: expected 1 product, got %d", what, len(products))
	}
	if products[0] != journeyResult {
		return fmt.Errorf("%s: got %+v, want %+v", what, products[0], journeyResult)
	}
	return nil
}

func (r *Runner) announce(w io.Writer, message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(w, "  %s %s\n", r.styles.Step.Render("[STEP]"), message)
	r.sleep(r.stepDelay)
}
