// Package main hosts the Marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// marathon generation runs, stored-marathon maintenance, library index
// inspection, preflight checks, and configuration scaffolding. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
