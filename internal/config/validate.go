package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. The oracle API key is
// deliberately not required here: the plan command accepts a per-run
// credential override, so its absence only fails when a generation actually
// starts without one.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOracle(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LibraryIndex) == "" {
		return errors.New("paths.library_index must be set")
	}
	return nil
}

func (c *Config) validateOracle() error {
	if strings.TrimSpace(c.Oracle.BaseURL) == "" {
		return errors.New("oracle.base_url must be set")
	}
	if strings.TrimSpace(c.Oracle.Model) == "" {
		return errors.New("oracle.model must be set")
	}
	if c.Oracle.TimeoutSeconds <= 0 {
		return fmt.Errorf("oracle.timeout_seconds must be positive, got %d", c.Oracle.TimeoutSeconds)
	}
	return nil
}
