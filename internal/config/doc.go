// Package config loads, normalizes, and validates the TOML configuration
// that drives the marquee CLI: filesystem paths, oracle connection settings,
// and log output controls.
package config
