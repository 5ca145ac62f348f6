package selfcheck

import "github.com/abgdnv/inventory/internal/terminal"

// The complete user journey: add two products, filter, update the second, clear the filter,
// remove the first and exit.
var (
	journeyEvents = []terminal.Event{
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyUp),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyDown),
		terminal.CharEvent('m'),
		terminal.CharEvent('o'),
		terminal.CharEvent('u'),
		terminal.CharEvent('s'),
		terminal.CharEvent('e'),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyBackspace),
		terminal.KeyEvent(terminal.KeyBackspace),
		terminal.KeyEvent(terminal.KeyBackspace),
		terminal.KeyEvent(terminal.KeyBackspace),
		terminal.KeyEvent(terminal.KeyBackspace),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyDown),
		terminal.KeyEvent(terminal.KeyEnter),
		terminal.KeyEvent(terminal.KeyExit),
	}

	journeyLines = []string{
		"E2E001",
		"E2E Mechanical Keyboard",
		"15",
		"2890",
		"E2E002",
		"E2E Precision Mouse",
		"20",
		"1990",
		"E2E Precision Mouse Pro",
		"25",
		"2490",
		"y",
	}

	journeyEventSteps = map[int]string{
		0:  `Selecting "Add new product" entry`,
		1:  `Re-selecting "Add new product" to add another item`,
		2:  "Opening form to add the second product",
		3:  "Highlighting the newly added product",
		4:  "Applying filter keyword 'mouse'",
		9:  "Opening product actions for filtered result",
		10: "Choosing to update the product",
		11: "Clearing the search filter",
		16: "Opening actions for the first product",
		17: "Navigating to the remove option",
		18: "Confirming product removal",
		19: "Exiting the application",
	}

	journeyLineSteps = map[int]string{
		0:  "Entering Product ID: E2E001",
		1:  "Entering Product Name: E2E Mechanical Keyboard",
		2:  "Entering Quantity: 15",
		3:  "Entering Unit Price: 2890",
		4:  "Entering Product ID: E2E002",
		5:  "Entering Product Name: E2E Precision Mouse",
		6:  "Entering Quantity: 20",
		7:  "Entering Unit Price: 1990",
		8:  "Updating Product Name to: E2E Precision Mouse Pro",
		9:  "Updating Quantity to: 25",
		10: "Updating Unit Price to: 2490",
		11: "Confirming removal with 'y'",
	}
)
