package config

import (
	"fmt"
	"strings"
	"time"
)

type SelfCheckConfig struct {
	StepDelay time.Duration `koanf:"stepDelay"`
}

// String returns a string representation of the SelfCheckConfig.
func (c *SelfCheckConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Self-check ---\n")
	b.WriteString(fmt.Sprintf("  stepDelay: %s\n", c.StepDelay))
	return b.String()
}

func (c *SelfCheckConfig) Validate() error {
	if c.StepDelay < 0 {
		return fmt.Errorf("self-check step delay must not be negative: %s", c.StepDelay)
	}
	return nil
}
