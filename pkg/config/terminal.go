package config

import (
	"fmt"
	"strings"
)

type TerminalConfig struct {
	// ReservedLines is the part of the screen not available for list rows.
	ReservedLines int `koanf:"reservedLines"`
	// DefaultRows is the height assumed when it cannot be detected.
	DefaultRows int `koanf:"defaultRows"`
}

// String returns a string representation of the TerminalConfig.
func (c *TerminalConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Terminal ---\n")
	b.WriteString(fmt.Sprintf("  reservedLines: %d\n", c.ReservedLines))
	b.WriteString(fmt.Sprintf("  defaultRows: %d\n", c.DefaultRows))
	return b.String()
}

func (c *TerminalConfig) Validate() error {
	if c.ReservedLines < 0 {
		return fmt.Errorf("terminal reserved lines must not be negative: %d", c.ReservedLines)
	}
	if c.DefaultRows <= 0 {
		return fmt.Errorf("terminal default rows must be positive: %d", c.DefaultRows)
	}
	return nil
}
