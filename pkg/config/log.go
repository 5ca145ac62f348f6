package config

import (
	"fmt"
	"strings"
)

type LogConfig struct {
	Level string `koanf:"level"`
	// File receives the JSON log. Empty disables logging.
	File string `koanf:"file"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	b.WriteString(fmt.Sprintf("  file: %s\n", orDisabled(c.File)))
	return b.String()
}

func (c *LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level %q, expected debug, info, warn or error", c.Level)
}

func orDisabled(v string) string {
	if v == "" {
		return "<disabled>"
	}
	return v
}
