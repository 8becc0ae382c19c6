// Package services defines shared utilities consumed by the planning
// pipeline and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp pipeline stage names and correlation
//     identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across stages.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform.
package services
