package config

import (
	"fmt"
	"strings"
)

type CatalogConfig struct {
	Path string `koanf:"path"`
}

// String returns a string representation of the catalog configuration.
func (c *CatalogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  path: %s\n", c.Path))
	return b.String()
}

func (c *CatalogConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("catalog path is not configured")
	}
	return nil
}
