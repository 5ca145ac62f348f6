// Package menu implements the interactive product list: filtering, scrolling, fixed actions
// and the per-product action menu.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abgdnv/inventory/internal/form"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/terminal"
)

// Fixed rows shown above the product list, in display order.
const (
	rowRunTests = iota
	rowRunE2E
	rowExit
	rowAdd
	fixedRows
)

// DefaultReservedLines is the number of screen lines the list frame uses for everything but products.
const DefaultReservedLines = 14

// Action is a fixed-row action that takes over the terminal until it returns.
type Action func(term terminal.Terminal)

// Options configures a Controller.
type Options struct {
	// ReservedLines is subtracted from the terminal height to get the products per page.
	ReservedLines int
	// RunUnitTests and RunEndToEndTests back the first two fixed rows. A nil action reports it is unavailable.
	RunUnitTests     Action
	RunEndToEndTests Action
}

// Controller is the main list state machine.
type Controller struct {
	service service.ProductService
	term    terminal.Terminal
	styles  terminal.Styles
	logger  *slog.Logger
	opts    Options

	filter   string
	selected int
	offset   int
	status   *statusLine
}

// NewController returns a Controller working on svc through term.
func NewController(svc service.ProductService, term terminal.Terminal, styles terminal.Styles, logger *slog.Logger, opts Options) *Controller {
	if opts.ReservedLines <= 0 {
		opts.ReservedLines = DefaultReservedLines
	}
	return &Controller{
		service: svc,
		term:    term,
		styles:  styles,
		logger:  logger.With("component", "menu"),
		opts:    opts,
	}
}

// Run loops until Exit is chosen, returning nil, or until reading a key fails, returning that error.
func (c *Controller) Run() error {
	c.resetSelection()
	for {
		matches := c.service.Search(c.filter)
		rows := fixedRows + len(matches)
		c.selected = clamp(c.selected, 0, rows-1)

		vp := ComputeViewport(c.selected-fixedRows, len(matches), c.itemsPerPage(), c.offset)
		c.offset = vp.Offset
		c.render(matches, vp)

		ev, err := c.term.ReadMenuKey()
		if err != nil {
			c.logger.Debug("Key input ended", "error", err)
			return fmt.Errorf("read key: %w", err)
		}
		ev = c.normalizeShortcut(ev)

		switch ev.Key {
		case terminal.KeyUp:
			c.selected = (c.selected - 1 + rows) % rows
		case terminal.KeyDown:
			c.selected = (c.selected + 1) % rows
		case terminal.KeyEnter:
			if c.selected < fixedRows {
				if c.runFixedRow(c.selected) {
					return nil
				}
				c.filter = ""
				c.resetSelection()
				continue
			}
			c.openProduct(matches[c.selected-fixedRows])
		case terminal.KeyDigit, terminal.KeyChar:
			c.filter += string(ev.Char)
			c.resetSelection()
		case terminal.KeyBackspace:
			if c.filter != "" {
				runes := []rune(c.filter)
				c.filter = string(runes[:len(runes)-1])
			}
		case terminal.KeyEscape:
			if c.filter != "" {
				c.filter = ""
				c.resetSelection()
			}
		}
	}
}

// normalizeShortcut turns a global shortcut into Enter on the matching fixed row.
func (c *Controller) normalizeShortcut(ev terminal.Event) terminal.Event {
	row := -1
	switch ev.Key {
	case terminal.KeyRunTests:
		row = rowRunTests
	case terminal.KeyRunE2E:
		row = rowRunE2E
	case terminal.KeyExit:
		row = rowExit
	case terminal.KeyAddProduct:
		row = rowAdd
	}
	if row < 0 {
		return ev
	}
	c.selected = row
	return terminal.KeyEvent(terminal.KeyEnter)
}

// resetSelection selects the first product row, or the add row when nothing matches, and scrolls to the top.
func (c *Controller) resetSelection() {
	c.offset = 0
	if len(c.service.Search(c.filter)) > 0 {
		c.selected = fixedRows
		return
	}
	c.selected = rowAdd
}

func (c *Controller) itemsPerPage() int {
	return max(c.term.Rows()-c.opts.ReservedLines, 1)
}

// runFixedRow performs a fixed-row action and reports whether the controller should exit.
func (c *Controller) runFixedRow(row int) bool {
	switch row {
	case rowExit:
		c.logger.Info("Exit selected")
		fmt.Fprintln(c.term, "Goodbye.")
		return true
	case rowAdd:
		c.term.Clear()
		c.addProduct()
	case rowRunTests:
		c.runAction("Unit tests", c.opts.RunUnitTests)
	case rowRunE2E:
		c.runAction("End-to-end tests", c.opts.RunEndToEndTests)
	}
	return false
}

func (c *Controller) runAction(name string, action Action) {
	if action == nil {
		c.setStatus(statusWarning, name+" are not available here.")
		return
	}
	c.logger.Info("Running self-check", "action", name)
	c.term.Clear()
	action(c.term)
	c.term.WaitForEnter()
}

// addProduct runs the add form and creates the product on commit.
func (c *Controller) addProduct() {
	f := form.New(c.term, c.styles, "Add new product",
		form.Stage{Label: "Product ID", Validate: func(text string) error { return c.service.ValidateID(text, "") }},
		form.Stage{Label: "Product name", Validate: c.service.ValidateName},
		form.Stage{Label: "Quantity", Validate: c.validateAmount},
		form.Stage{Label: "Unit price", Validate: c.validateAmount},
	)
	err := f.Run(func(values []string) error {
		quantity, _ := c.service.ParseAmount(values[2])
		unitPrice, _ := c.service.ParseAmount(values[3])
		created, err := c.service.Create(service.ProductCreateDto{
			ID:        values[0],
			Name:      values[1],
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		if created != nil {
			c.setStatus(statusSuccess, fmt.Sprintf("Product %s added.", created.ID))
		}
		return err
	})
	c.reportFormResult("Add", err)
}

func (c *Controller) validateAmount(text string) error {
	_, err := c.service.ParseAmount(text)
	return err
}

// reportFormResult turns the outcome of a form into the status line.
func (c *Controller) reportFormResult(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, perrors.ErrPersistFailed):
		c.setStatus(statusWarning, "Warning: change kept in memory but the catalog file could not be saved.")
	case errors.Is(err, form.ErrCancelled):
		c.setStatus(statusInfo, op+" cancelled.")
	case errors.Is(err, terminal.ErrInputExhausted), errors.Is(err, io.EOF):
		c.setStatus(statusInfo, op+" cancelled, input ended.")
	default:
		c.logger.Warn("Form failed", "op", op, "error", err)
		c.setStatus(statusError, op+" failed: "+err.Error())
	}
}

func (c *Controller) setStatus(kind statusKind, text string) {
	c.status = &statusLine{kind: kind, text: strings.TrimSpace(text)}
}
