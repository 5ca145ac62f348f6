package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/form"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/terminal"
)

// Result is what the per-product action menu did.
type Result int

const (
	ResultNone Result = iota
	ResultUpdated
	ResultRemoved
)

const (
	actionUpdate = iota
	actionRemove
	actionBack
	actionCount
)

var actionLabels = [actionCount]string{
	actionUpdate: "Update",
	actionRemove: "Remove",
	actionBack:   "Back",
}

// openProduct shows the action menu for p and applies its result to the list state.
func (c *Controller) openProduct(p service.ProductDto) {
	result := c.productActions(p)
	c.logger.Debug("Product actions finished", "ID", p.ID, "result", result)
	if result == ResultRemoved {
		// Indices shift after a removal, so start again from the top.
		c.resetSelection()
	}
}

// productActions runs the Update / Remove / Back menu for one product.
func (c *Controller) productActions(p service.ProductDto) Result {
	selected := actionUpdate
	for {
		c.renderActions(p, selected)

		ev, err := c.term.ReadMenuKey()
		if err != nil {
			return ResultNone
		}
		switch ev.Key {
		case terminal.KeyUp:
			selected = (selected - 1 + actionCount) % actionCount
			continue
		case terminal.KeyDown:
			selected = (selected + 1) % actionCount
			continue
		case terminal.KeyDigit:
			if ev.Digit < 1 || ev.Digit > actionCount {
				continue
			}
			selected = ev.Digit - 1
		case terminal.KeyEnter:
		case terminal.KeyEscape, terminal.KeyExit:
			return ResultNone
		default:
			continue
		}

		switch selected {
		case actionUpdate:
			return c.updateProduct(p)
		case actionRemove:
			return c.removeProduct(p)
		default:
			return ResultNone
		}
	}
}

func (c *Controller) renderActions(p service.ProductDto, selected int) {
	w := c.term
	c.term.Clear()
	fmt.Fprintln(w, c.styles.Title.Render("=== Product actions ==="))
	fmt.Fprintf(w, "ID: %s\nName: %s\nQuantity: %d\nUnit price: %d\n\n", terminal.Printable(p.ID), terminal.Printable(p.Name), p.Quantity, p.UnitPrice)
	for i, label := range actionLabels {
		text := fmt.Sprintf("%d. %s", i+1, label)
		if i == selected {
			fmt.Fprintln(w, "> "+c.styles.Selected.Render(text))
		} else {
			fmt.Fprintln(w, "  "+text)
		}
	}
	fmt.Fprintln(w, c.styles.Hint.Render("Up/Down move, 1-3 or Enter selects, Esc goes back"))
}

// updateProduct runs the update form pre-filled with the current values.
func (c *Controller) updateProduct(p service.ProductDto) Result {
	c.term.Clear()
	f := form.New(c.term, c.styles, "Update product "+terminal.Printable(p.ID),
		form.Stage{Label: "Product name", Value: p.Name, Validate: c.service.ValidateName},
		form.Stage{Label: "Quantity", Value: strconv.Itoa(p.Quantity), Validate: c.validateAmount},
		form.Stage{Label: "Unit price", Value: strconv.Itoa(p.UnitPrice), Validate: c.validateAmount},
	)
	result := ResultNone
	err := f.Run(func(values []string) error {
		name := values[0]
		quantity, _ := c.service.ParseAmount(values[1])
		unitPrice, _ := c.service.ParseAmount(values[2])
		updated, err := c.service.Update(p.ID, service.ProductUpdateDto{Name: &name, Quantity: quantity, UnitPrice: unitPrice})
		if updated != nil {
			result = ResultUpdated
			c.setStatus(statusSuccess, fmt.Sprintf("Product %s updated.", updated.ID))
		}
		return err
	})
	c.reportFormResult("Update", err)
	return result
}

// removeProduct asks for a typed y or Y and removes the product. Anything else aborts.
func (c *Controller) removeProduct(p service.ProductDto) Result {
	fmt.Fprintf(c.term, "Remove %s (%s)? Type y to confirm: ", terminal.Printable(p.ID), terminal.Printable(p.Name))
	line, err := c.term.ReadLine()
	if err != nil {
		fmt.Fprintln(c.term)
		c.setStatus(statusInfo, "Remove cancelled.")
		return ResultNone
	}
	if answer := strings.TrimSpace(line); answer != "y" && answer != "Y" {
		c.setStatus(statusInfo, "Remove cancelled.")
		return ResultNone
	}

	err = c.service.DeleteByID(p.ID)
	switch {
	case err == nil:
		c.setStatus(statusSuccess, fmt.Sprintf("Product %s removed.", p.ID))
	case errors.Is(err, perrors.ErrPersistFailed):
		c.setStatus(statusWarning, "Warning: product removed in memory but the catalog file could not be saved.")
	case errors.Is(err, perrors.ErrProductNotFound):
		c.setStatus(statusError, fmt.Sprintf("Product %s no longer exists.", p.ID))
		return ResultNone
	default:
		c.setStatus(statusError, "Remove failed: "+err.Error())
		return ResultNone
	}
	return ResultRemoved
}
