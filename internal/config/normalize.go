package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOracle()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LibraryIndex) == "" {
		c.Paths.LibraryIndex = defaultLibraryIndex
	}
	if c.Paths.LibraryIndex, err = expandPath(c.Paths.LibraryIndex); err != nil {
		return fmt.Errorf("paths.library_index: %w", err)
	}
	return nil
}

func (c *Config) normalizeOracle() {
	c.Oracle.APIKey = strings.TrimSpace(c.Oracle.APIKey)
	if c.Oracle.APIKey == "" {
		if value, ok := os.LookupEnv("MARQUEE_ORACLE_API_KEY"); ok {
			c.Oracle.APIKey = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.Oracle.APIKey = strings.TrimSpace(value)
		}
	}
	c.Oracle.BaseURL = strings.TrimSpace(c.Oracle.BaseURL)
	if c.Oracle.BaseURL == "" {
		c.Oracle.BaseURL = defaultOracleBaseURL
	}
	c.Oracle.Model = strings.TrimSpace(c.Oracle.Model)
	if c.Oracle.Model == "" {
		c.Oracle.Model = defaultOracleModel
	}
	if c.Oracle.TimeoutSeconds <= 0 {
		c.Oracle.TimeoutSeconds = defaultOracleTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
