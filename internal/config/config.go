package config

import (
	"strings"

	"github.com/abgdnv/inventory/pkg/config"
	"github.com/abgdnv/inventory/pkg/config/configloader"
)

// AppName prefixes environment variables, e.g. INVENTORY_CATALOG_PATH.
const AppName = "inventory"

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Catalog   config.CatalogConfig   `koanf:"catalog"`
	Log       config.LogConfig       `koanf:"log"`
	Terminal  config.TerminalConfig  `koanf:"terminal"`
	SelfCheck config.SelfCheckConfig `koanf:"selfcheck"`
}

// Defaults are the built-in values, overridden by config.yaml, .env and the environment.
func Defaults() map[string]any {
	return map[string]any{
		"catalog.path":           "products.csv",
		"log.level":              "info",
		"log.file":               "inventory.log",
		"terminal.reservedLines": 14,
		"terminal.defaultRows":   24,
		"selfcheck.stepDelay":    "600ms",
	}
}

// Load reads the configuration for the inventory application.
func Load() (*Config, error) {
	return configloader.Load[*Config](AppName, Defaults())
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Catalog.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.Terminal.String())
	b.WriteString(c.SelfCheck.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Terminal.Validate(); err != nil {
		return err
	}
	return c.SelfCheck.Validate()
}
