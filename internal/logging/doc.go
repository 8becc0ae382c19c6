// Package logging constructs the application's slog loggers and defines the
// standardized structured field keys used across the pipeline.
package logging
