package menu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/terminal"
	"github.com/mattn/go-runewidth"
)

// Column widths of the product table, in terminal cells.
const (
	idWidth    = 20
	nameWidth  = 34
	qtyWidth   = 8
	priceWidth = 10
)

var fixedRowLabels = [fixedRows]string{
	rowRunTests: "Run unit tests",
	rowRunE2E:   "Run end-to-end tests",
	rowExit:     "Exit",
	rowAdd:      "Add new product",
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type statusLine struct {
	kind statusKind
	text string
}

// cell truncates s to width cells and pads it on the side given by right.
func cell(s string, width int, right bool) string {
	s = terminal.Printable(s)
	s = runewidth.Truncate(s, width, "…")
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}

func tableHeader() string {
	return cell("ID", idWidth, false) + " " + cell("Name", nameWidth, false) + " " +
		cell("Qty", qtyWidth, true) + " " + cell("Price", priceWidth, true)
}

func productRow(p service.ProductDto) string {
	return cell(p.ID, idWidth, false) + " " + cell(p.Name, nameWidth, false) + " " +
		cell(strconv.Itoa(p.Quantity), qtyWidth, true) + " " + cell(strconv.Itoa(p.UnitPrice), priceWidth, true)
}

// render draws one frame of the main list.
func (c *Controller) render(matches []service.ProductDto, vp Viewport) {
	w := c.term
	c.term.Clear()

	fmt.Fprintln(w, c.styles.Title.Render("=== Product Inventory ==="))
	filter := c.filter
	if filter == "" {
		filter = "(none)"
	}
	fmt.Fprintf(w, "Filter: %s | Matches: %d | Page %d/%d\n", filter, len(matches), vp.Page, vp.Pages)
	fmt.Fprintln(w, c.styles.Hint.Render("Type to filter, Backspace deletes, Esc clears, Up/Down move, Enter selects"))
	fmt.Fprintln(w, c.styles.Hint.Render("Shortcuts: Ctrl+N add, Ctrl+T unit tests, Ctrl+E end-to-end tests, Ctrl+Q exit"))
	fmt.Fprintln(w)

	for row, label := range fixedRowLabels {
		c.renderRow(w, row, label)
	}
	fmt.Fprintln(w)

	if len(matches) == 0 {
		if c.filter != "" {
			fmt.Fprintln(w, c.styles.Hint.Render("  No products match the filter."))
		} else {
			fmt.Fprintln(w, c.styles.Hint.Render("  The catalog is empty."))
		}
	} else {
		fmt.Fprintln(w, "  "+c.styles.Header.Render(tableHeader()))
		if vp.MoreAbove {
			fmt.Fprintln(w, c.styles.Hint.Render(fmt.Sprintf("  ... %d more above", vp.Offset)))
		}
		for i := vp.Offset; i < vp.End(); i++ {
			c.renderRow(w, fixedRows+i, productRow(matches[i]))
		}
		if vp.MoreBelow {
			fmt.Fprintln(w, c.styles.Hint.Render(fmt.Sprintf("  ... %d more below", len(matches)-vp.End())))
		}
	}

	if c.status != nil {
		fmt.Fprintln(w, c.renderStatus(*c.status))
		c.status = nil
	}
}

func (c *Controller) renderRow(w io.Writer, row int, text string) {
	if row == c.selected {
		fmt.Fprintln(w, "> "+c.styles.Selected.Render(text))
		return
	}
	fmt.Fprintln(w, "  "+text)
}

func (c *Controller) renderStatus(s statusLine) string {
	text := terminal.Printable(s.text)
	switch s.kind {
	case statusSuccess:
		return c.styles.Success.Render(text)
	case statusWarning:
		return c.styles.Warning.Render(text)
	case statusError:
		return c.styles.Error.Render(text)
	default:
		return c.styles.Info.Render(text)
	}
}
